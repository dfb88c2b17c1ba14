package expand

import (
	"testing"
	"time"

	"lifeplanner/internal/model"
)

var testNow = time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

func baseEvent(rule *model.RecurrenceRule) model.Event {
	return model.Event{
		Title:      "Pills",
		Category:   model.CategoryHealth,
		Date:       "2025-01-05", // a Sunday
		Recurrence: rule,
	}
}

func TestSeriesNoRule(t *testing.T) {
	got := Series(baseEvent(nil), testNow)

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].GroupID != "" || got[0].SeriesIndex != 0 || got[0].SeriesTotal != 0 {
		t.Errorf("single event must stay ungrouped: %+v", got[0])
	}
}

func TestSeriesWeekly(t *testing.T) {
	got := Series(baseEvent(&model.RecurrenceRule{
		Frequency: model.FreqWeekly,
		Interval:  1,
		Count:     4,
	}), testNow)

	wantDates := []string{"2025-01-05", "2025-01-12", "2025-01-19", "2025-01-26"}
	if len(got) != len(wantDates) {
		t.Fatalf("len = %d, want %d", len(got), len(wantDates))
	}

	groupID := got[0].GroupID
	if groupID == "" {
		t.Fatal("missing group id")
	}

	for i, ev := range got {
		if ev.Date != wantDates[i] {
			t.Errorf("instance %d date = %q, want %q", i, ev.Date, wantDates[i])
		}
		if ev.GroupID != groupID {
			t.Errorf("instance %d group = %q, want shared %q", i, ev.GroupID, groupID)
		}
		if ev.SeriesIndex != i+1 {
			t.Errorf("instance %d index = %d, want %d", i, ev.SeriesIndex, i+1)
		}
		if ev.SeriesTotal != 4 {
			t.Errorf("instance %d total = %d, want 4", i, ev.SeriesTotal)
		}
	}
}

func TestSeriesUntilBound(t *testing.T) {
	got := Series(baseEvent(&model.RecurrenceRule{
		Frequency: model.FreqDaily,
		Interval:  1,
		Until:     "2025-01-07",
		Count:     20,
	}), testNow)

	// 2025-01-05 .. 2025-01-07 inclusive.
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (until is inclusive)", len(got))
	}
	if got[2].Date != "2025-01-07" {
		t.Errorf("last date = %q, want 2025-01-07", got[2].Date)
	}
	if got[0].SeriesTotal != 3 {
		t.Errorf("total = %d, want actual emitted count", got[0].SeriesTotal)
	}
}

func TestSeriesDefaults(t *testing.T) {
	// No count, no until: bounded by 20 occurrences and now + 3 months,
	// whichever is reached first. Daily from 2025-01-05 hits the count cap.
	got := Series(baseEvent(&model.RecurrenceRule{
		Frequency: model.FreqDaily,
	}), testNow)

	if len(got) != 20 {
		t.Fatalf("len = %d, want default count 20", len(got))
	}

	// Monthly from 2025-01-05 hits the 3-month window first.
	got = Series(baseEvent(&model.RecurrenceRule{
		Frequency: model.FreqMonthly,
	}), testNow)

	// 01-05, 02-05, 03-05; 04-05 is past the 2025-04-02 window.
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}

func TestSeriesMonthlyCalendarStepping(t *testing.T) {
	got := Series(baseEvent(&model.RecurrenceRule{
		Frequency: model.FreqMonthly,
		Interval:  1,
		Count:     3,
		Until:     "2026-01-01",
	}), testNow)

	wantDates := []string{"2025-01-05", "2025-02-05", "2025-03-05"}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, ev := range got {
		if ev.Date != wantDates[i] {
			t.Errorf("instance %d date = %q, want %q", i, ev.Date, wantDates[i])
		}
	}
}

func TestSeriesMonthlyClampsMonthEnd(t *testing.T) {
	base := baseEvent(&model.RecurrenceRule{
		Frequency: model.FreqMonthly,
		Interval:  1,
		Count:     4,
		Until:     "2025-12-31",
	})
	base.Date = "2025-01-31"

	got := Series(base, testNow)

	// Every month emits exactly one instance; the day clamps to the end of
	// shorter months and stays there.
	wantDates := []string{"2025-01-31", "2025-02-28", "2025-03-28", "2025-04-28"}
	if len(got) != len(wantDates) {
		t.Fatalf("len = %d, want %d", len(got), len(wantDates))
	}
	for i, ev := range got {
		if ev.Date != wantDates[i] {
			t.Errorf("instance %d date = %q, want %q", i, ev.Date, wantDates[i])
		}
	}
	if got[0].SeriesTotal != 4 {
		t.Errorf("total = %d, want 4", got[0].SeriesTotal)
	}
}

func TestSeriesYearlyFromLeapDay(t *testing.T) {
	base := baseEvent(&model.RecurrenceRule{
		Frequency: model.FreqYearly,
		Interval:  1,
		Count:     3,
		Until:     "2027-12-31",
	})
	base.Date = "2024-02-29"

	got := Series(base, testNow)

	// No year is skipped; Feb 29 clamps to Feb 28 in common years.
	wantDates := []string{"2024-02-29", "2025-02-28", "2026-02-28"}
	if len(got) != len(wantDates) {
		t.Fatalf("len = %d, want %d", len(got), len(wantDates))
	}
	for i, ev := range got {
		if ev.Date != wantDates[i] {
			t.Errorf("instance %d date = %q, want %q", i, ev.Date, wantDates[i])
		}
	}
}

func TestSeriesBadBaseDate(t *testing.T) {
	base := baseEvent(&model.RecurrenceRule{Frequency: model.FreqWeekly, Count: 4})
	base.Date = "whenever"

	got := Series(base, testNow)

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (degrade to single base event)", len(got))
	}
	if got[0].GroupID != "" {
		t.Error("degraded base event must not carry a group id")
	}
	if got[0].Date != "whenever" {
		t.Errorf("date = %q, want untouched", got[0].Date)
	}
}

func TestSeriesUnknownFrequency(t *testing.T) {
	got := Series(baseEvent(&model.RecurrenceRule{
		Frequency: "FORTNIGHTLY",
		Count:     10,
	}), testNow)

	// Expansion halts after the first emission: a series of one.
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].GroupID == "" || got[0].SeriesIndex != 1 || got[0].SeriesTotal != 1 {
		t.Errorf("unknown frequency should yield a one-instance series: %+v", got[0])
	}
}

func TestSeriesUntilBeforeBase(t *testing.T) {
	got := Series(baseEvent(&model.RecurrenceRule{
		Frequency: model.FreqWeekly,
		Until:     "2024-12-01",
	}), testNow)

	// The bound excludes every occurrence; the sequence must stay non-empty.
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].GroupID != "" {
		t.Error("fallback event must be ungrouped")
	}
}
