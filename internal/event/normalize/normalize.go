// Package normalize turns a raw extraction candidate into a clean partial
// event. Optional fields arriving as empty, whitespace, or the literal
// string "null" are scrubbed to absent; renewal reminder dates are offset
// from the expiry. Malformed dates never fail — they degrade to the nearest
// sensible value.
package normalize

import (
	"strings"
	"time"

	"lifeplanner/internal/model"
	"lifeplanner/pkg/datemath"
	"lifeplanner/pkg/gemini"
)

// renewalReminderDays is how far ahead of expiry the reminder date lands.
const renewalReminderDays = 30

// Candidate normalizes one raw candidate into an event ready for expansion
// and storage. ID and SourceType are assigned by the caller. The returned
// event always carries a date: candidates without one default to now's date.
func Candidate(cand gemini.Candidate, now time.Time) model.Event {
	baseDate := CleanString(cand.Date)
	if baseDate == "" {
		baseDate = datemath.Today(now)
	}
	expiryDate := CleanString(cand.ExpirationDate)

	if cand.IsRenewal {
		if expiryDate != "" {
			// Reminder lands 30 days before expiry. An unparseable expiry
			// leaves the base date as-is rather than failing the candidate.
			if reminder, err := datemath.AddDays(expiryDate, -renewalReminderDays); err == nil {
				baseDate = reminder
			}
		} else {
			// Only one date found: treat it as the expiry and offset it.
			expiryDate = baseDate
			if reminder, err := datemath.AddDays(baseDate, -renewalReminderDays); err == nil {
				baseDate = reminder
			}
		}
	}

	category := model.Category(cand.Category)
	if !category.IsValid() {
		category = model.CategoryOther
	}

	ev := model.Event{
		Title:       cand.Title,
		Description: cand.Description,
		Category:    category,
		Date:        baseDate,
		StartTime:   CleanString(cand.StartTime),
		EndTime:     CleanString(cand.EndTime),
		Amount:      CleanString(cand.Amount),
		Currency:    CleanString(cand.Currency),
		IsRenewal:   cand.IsRenewal,
		ExpiryDate:  expiryDate,
	}

	if cand.Recurrence != nil {
		ev.Recurrence = &model.RecurrenceRule{
			Frequency: model.Frequency(cand.Recurrence.Frequency),
			Interval:  cand.Recurrence.Interval,
			Until:     CleanString(cand.Recurrence.Until),
			Count:     cand.Recurrence.Count,
		}
	}

	return ev
}

// CleanString maps empty, whitespace-only, and the case-insensitive literal
// "null" to absent ("").
func CleanString(val string) string {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return ""
	}
	return val
}
