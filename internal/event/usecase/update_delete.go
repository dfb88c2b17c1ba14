package usecase

import (
	"context"

	"lifeplanner/internal/event"
	"lifeplanner/internal/event/repository"
	"lifeplanner/internal/model"
)

func (uc *implUseCase) Update(ctx context.Context, input event.UpdateInput) (event.UpdateOutput, error) {
	opt := repository.UpdateEventOptions{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Amount:      input.Amount,
		Currency:    input.Currency,
	}
	if input.Category != nil {
		cat := model.Category(*input.Category)
		if !cat.IsValid() {
			return event.UpdateOutput{}, event.ErrInvalidCategory
		}
		opt.Category = &cat
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	updated, err := uc.repo.Update(ctx, input.ID, opt)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Update: %v", err)
		return event.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return event.UpdateOutput{Found: false}, nil
	}

	// An edit can move the event into or out of a clash or past-ness.
	if err := uc.refreshFlags(ctx); err != nil {
		return event.UpdateOutput{}, err
	}

	fresh, err := uc.repo.Get(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Update.Get: %v", err)
		return event.UpdateOutput{}, err
	}
	return event.UpdateOutput{Event: fresh, Found: true}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "event.usecase.Delete: %v", err)
		return err
	}

	// Removing one side of a pairwise clash can clear the other side.
	return uc.refreshFlags(ctx)
}
