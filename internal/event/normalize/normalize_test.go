package normalize

import (
	"testing"
	"time"

	"lifeplanner/internal/model"
	"lifeplanner/pkg/gemini"
)

var testNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func TestCleanString(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"null", ""},
		{"NULL", ""},
		{" Null ", ""},
		{"50", "50"},
		{"EUR", "EUR"},
		{"09:00", "09:00"},
	}

	for _, tc := range cases {
		if got := CleanString(tc.in); got != tc.want {
			t.Errorf("CleanString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCandidateScrubsNullTokens(t *testing.T) {
	ev := Candidate(gemini.Candidate{
		IsEvent:     true,
		Title:       "Dentist",
		Description: "Checkup",
		Category:    "HEALTH",
		Date:        "2025-04-01",
		StartTime:   "null",
		EndTime:     "  ",
		Amount:      "NULL",
		Currency:    "",
	}, testNow)

	if ev.StartTime != "" || ev.EndTime != "" || ev.Amount != "" || ev.Currency != "" {
		t.Errorf("null tokens not scrubbed: %+v", ev)
	}
	if ev.Date != "2025-04-01" {
		t.Errorf("date = %q, want 2025-04-01", ev.Date)
	}
}

func TestCandidateRenewalOffset(t *testing.T) {
	ev := Candidate(gemini.Candidate{
		IsEvent:        true,
		IsRenewal:      true,
		Title:          "Car insurance",
		Category:       "RENEWAL",
		ExpirationDate: "2025-06-30",
	}, testNow)

	if ev.Date != "2025-05-31" {
		t.Errorf("reminder date = %q, want 2025-05-31 (expiry - 30 days)", ev.Date)
	}
	if ev.ExpiryDate != "2025-06-30" {
		t.Errorf("expiry date = %q, want 2025-06-30", ev.ExpiryDate)
	}
}

func TestCandidateRenewalDateOnlyTreatedAsExpiry(t *testing.T) {
	ev := Candidate(gemini.Candidate{
		IsEvent:   true,
		IsRenewal: true,
		Title:     "Warranty",
		Category:  "RENEWAL",
		Date:      "2025-06-30",
	}, testNow)

	if ev.ExpiryDate != "2025-06-30" {
		t.Errorf("expiry = %q, want the supplied date promoted to expiry", ev.ExpiryDate)
	}
	if ev.Date != "2025-05-31" {
		t.Errorf("reminder date = %q, want 2025-05-31", ev.Date)
	}
}

// Malformed expiry dates keep the effective date unchanged instead of
// failing the candidate. A deliberate degradation, not data loss.
func TestCandidateRenewalBadExpiryFallsBack(t *testing.T) {
	ev := Candidate(gemini.Candidate{
		IsEvent:        true,
		IsRenewal:      true,
		Title:          "Sub",
		Category:       "RENEWAL",
		Date:           "2025-04-10",
		ExpirationDate: "sometime next year",
	}, testNow)

	if ev.Date != "2025-04-10" {
		t.Errorf("date = %q, want original 2025-04-10 kept on bad expiry", ev.Date)
	}
}

func TestCandidateDefaultsDateToToday(t *testing.T) {
	ev := Candidate(gemini.Candidate{
		IsEvent:  true,
		Title:    "Call mom",
		Category: "SOCIAL",
		Date:     "null",
	}, testNow)

	if ev.Date != "2025-03-15" {
		t.Errorf("date = %q, want normalization-time today", ev.Date)
	}
}

func TestCandidateUnknownCategory(t *testing.T) {
	ev := Candidate(gemini.Candidate{
		IsEvent:  true,
		Title:    "X",
		Category: "SOMETHING_ELSE",
		Date:     "2025-04-01",
	}, testNow)

	if ev.Category != model.CategoryOther {
		t.Errorf("category = %q, want OTHER fallback", ev.Category)
	}
}

func TestCandidateCarriesRecurrence(t *testing.T) {
	ev := Candidate(gemini.Candidate{
		IsEvent:  true,
		Title:    "Pills",
		Category: "HEALTH",
		Date:     "2025-01-05",
		Recurrence: &gemini.CandidateRecurrence{
			Frequency: "WEEKLY",
			Interval:  1,
			Until:     "null",
			Count:     4,
		},
	}, testNow)

	if ev.Recurrence == nil {
		t.Fatal("recurrence dropped")
	}
	if ev.Recurrence.Frequency != model.FreqWeekly || ev.Recurrence.Count != 4 {
		t.Errorf("recurrence = %+v", ev.Recurrence)
	}
	if ev.Recurrence.Until != "" {
		t.Errorf("until = %q, want scrubbed", ev.Recurrence.Until)
	}
}
