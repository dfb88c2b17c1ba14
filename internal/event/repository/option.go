package repository

import "lifeplanner/internal/model"

// UpdateEventOptions is a partial merge into one stored event. Nil fields
// stay untouched; pointers to zero values clear the field.
type UpdateEventOptions struct {
	Title        *string
	Description  *string
	Category     *model.Category
	Date         *string
	StartTime    *string
	EndTime      *string
	Amount       *string
	Currency     *string
	IsConflict   *bool
	IsPast       *bool
	AISuggestion *string
}

// Apply merges opt into ev. Shared by backends so merge semantics cannot
// drift between them.
func Apply(ev *model.Event, opt UpdateEventOptions) {
	if opt.Title != nil {
		ev.Title = *opt.Title
	}
	if opt.Description != nil {
		ev.Description = *opt.Description
	}
	if opt.Category != nil {
		ev.Category = *opt.Category
	}
	if opt.Date != nil {
		ev.Date = *opt.Date
	}
	if opt.StartTime != nil {
		ev.StartTime = *opt.StartTime
	}
	if opt.EndTime != nil {
		ev.EndTime = *opt.EndTime
	}
	if opt.Amount != nil {
		ev.Amount = *opt.Amount
	}
	if opt.Currency != nil {
		ev.Currency = *opt.Currency
	}
	if opt.IsConflict != nil {
		ev.IsConflict = *opt.IsConflict
	}
	if opt.IsPast != nil {
		ev.IsPast = *opt.IsPast
	}
	if opt.AISuggestion != nil {
		ev.AISuggestion = *opt.AISuggestion
	}
}
