package usecase

import (
	"context"

	"lifeplanner/internal/event"
	"lifeplanner/internal/event/project"
	"lifeplanner/internal/model"
)

func (uc *implUseCase) List(ctx context.Context, input event.ListInput) (event.ListOutput, error) {
	if input.Category != "" && input.Category != project.CategoryAll && !model.Category(input.Category).IsValid() {
		return event.ListOutput{}, event.ErrInvalidCategory
	}

	events, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List: %v", err)
		return event.ListOutput{}, err
	}

	view := project.View(events, project.Filter{
		Category: input.Category,
		Date:     input.Date,
	}, uc.today())

	return event.ListOutput{Events: view}, nil
}

func (uc *implUseCase) ListAll(ctx context.Context) (event.ListOutput, error) {
	events, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.ListAll: %v", err)
		return event.ListOutput{}, err
	}
	return event.ListOutput{Events: events}, nil
}
