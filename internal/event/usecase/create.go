package usecase

import (
	"context"
	"strings"

	"lifeplanner/internal/event"
	"lifeplanner/internal/model"
)

// Create adds a manually entered event. The candidate runs through the
// same normalization and recurrence pipeline as extracted ones, so manual
// entries get identical defaulting and flagging behavior.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateInput) (event.CreateOutput, error) {
	cand := input.Candidate
	if strings.TrimSpace(cand.Title) == "" {
		return event.CreateOutput{}, event.ErrEmptyInput
	}
	if cand.Category != "" && !model.Category(cand.Category).IsValid() {
		return event.CreateOutput{}, event.ErrInvalidCategory
	}
	cand.IsEvent = true

	events, err := uc.ingest(ctx, cand, model.SourceText)
	if err != nil {
		return event.CreateOutput{}, err
	}

	return event.CreateOutput{Events: events}, nil
}
