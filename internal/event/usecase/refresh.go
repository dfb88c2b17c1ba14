package usecase

import "context"

// RefreshIssues recomputes past/conflict flags over the whole store. Run at
// day rollover; yesterday's events become past and drop out of conflicts.
func (uc *implUseCase) RefreshIssues(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.l.Infof(ctx, "event.usecase.RefreshIssues: recomputing flags")
	return uc.refreshFlags(ctx)
}
