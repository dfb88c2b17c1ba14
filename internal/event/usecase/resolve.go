package usecase

import (
	"context"

	"lifeplanner/internal/event"
	"lifeplanner/internal/event/repository"
	"lifeplanner/internal/model"
	"lifeplanner/pkg/datemath"
)

const conflictMessage = "Time overlap detected."

func (uc *implUseCase) PlanResolutions(ctx context.Context) (event.PlanOutput, error) {
	events, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.PlanResolutions: %v", err)
		return event.PlanOutput{}, err
	}

	var resolutions []model.Resolution
	for _, ev := range events {
		if !ev.IsConflict {
			continue
		}
		resolutions = append(resolutions, uc.planFor(ev))
	}
	if len(resolutions) == 0 {
		return event.PlanOutput{}, event.ErrNoConflicts
	}

	return event.PlanOutput{Resolutions: resolutions}, nil
}

// planFor proposes moving one conflicting event a day later, keeping its
// times. The freed slot is not checked for availability; the next detection
// pass re-flags if the move lands on another clash.
func (uc *implUseCase) planFor(ev model.Event) model.Resolution {
	base := ev.Date
	if _, err := datemath.ParseDate(base); err != nil {
		base = uc.today()
	}
	newDate, err := datemath.AddDays(base, 1)
	if err != nil {
		newDate = base
	}

	return model.Resolution{
		EventID:      ev.ID,
		IssueType:    model.IssueConflict,
		Message:      conflictMessage,
		Action:       model.ActionReschedule,
		NewDate:      newDate,
		NewStartTime: ev.StartTime,
		NewEndTime:   ev.EndTime,
	}
}

func (uc *implUseCase) ApplyResolution(ctx context.Context, input event.ApplyResolutionInput) (event.ApplyResolutionOutput, error) {
	switch input.Action {
	case model.ActionDelete, model.ActionReschedule:
	default:
		return event.ApplyResolutionOutput{}, event.ErrInvalidAction
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	ev, err := uc.repo.Get(ctx, input.EventID)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.ApplyResolution.Get: %v", err)
		return event.ApplyResolutionOutput{}, err
	}
	if ev.ID == "" {
		return event.ApplyResolutionOutput{}, nil
	}
	// Remediation only applies to flagged events. The flag may have been
	// cleared between planning and applying.
	if !ev.IsConflict {
		return event.ApplyResolutionOutput{}, event.ErrNotConflicting
	}

	if input.Action == model.ActionDelete {
		if err := uc.repo.Delete(ctx, ev.ID); err != nil {
			uc.l.Errorf(ctx, "event.usecase.ApplyResolution.Delete: %v", err)
			return event.ApplyResolutionOutput{}, err
		}
		if err := uc.refreshFlags(ctx); err != nil {
			return event.ApplyResolutionOutput{}, err
		}
		return event.ApplyResolutionOutput{Deleted: true}, nil
	}

	return uc.applyReschedule(ctx, ev, input.DateOverride)
}

func (uc *implUseCase) applyReschedule(ctx context.Context, ev model.Event, dateOverride string) (event.ApplyResolutionOutput, error) {
	plan := uc.planFor(ev)
	newDate := plan.NewDate
	if dateOverride != "" {
		newDate = dateOverride
	}

	falseVal := false
	empty := ""
	opt := repository.UpdateEventOptions{
		Date:         &newDate,
		StartTime:    &plan.NewStartTime,
		EndTime:      &plan.NewEndTime,
		IsConflict:   &falseVal,
		AISuggestion: &empty,
	}
	if _, err := uc.repo.Update(ctx, ev.ID, opt); err != nil {
		uc.l.Errorf(ctx, "event.usecase.applyReschedule.Update: %v", err)
		return event.ApplyResolutionOutput{}, err
	}

	// Re-detect: the move may clear the counterpart's flag, or re-flag this
	// event if the new slot clashes too.
	if err := uc.refreshFlags(ctx); err != nil {
		return event.ApplyResolutionOutput{}, err
	}

	fresh, err := uc.repo.Get(ctx, ev.ID)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.applyReschedule.refetch: %v", err)
		return event.ApplyResolutionOutput{}, err
	}
	return event.ApplyResolutionOutput{Event: fresh}, nil
}
