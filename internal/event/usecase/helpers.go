package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"

	"lifeplanner/internal/event/detect"
	"lifeplanner/internal/event/expand"
	"lifeplanner/internal/event/normalize"
	"lifeplanner/internal/event/repository"
	"lifeplanner/internal/model"
	"lifeplanner/pkg/datemath"
	"lifeplanner/pkg/gemini"
)

func cacheKey(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (uc *implUseCase) today() string {
	return datemath.Today(uc.now())
}

// refreshFlags re-runs issue detection over the whole store and persists
// only the flags that changed. Callers must hold uc.mu.
func (uc *implUseCase) refreshFlags(ctx context.Context) error {
	events, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.refreshFlags.List: %v", err)
		return err
	}

	for _, fu := range detect.Flags(events, uc.today()) {
		opt := repository.UpdateEventOptions{
			IsPast:     fu.IsPast,
			IsConflict: fu.IsConflict,
		}
		if _, err := uc.repo.Update(ctx, fu.ID, opt); err != nil {
			uc.l.Errorf(ctx, "event.usecase.refreshFlags.Update: %v", err)
			return err
		}
	}

	return nil
}

// ingest normalizes a candidate, expands any recurrence, stores the
// resulting instances, and re-runs detection, all under the store mutex.
// It returns the stored instances with their freshly computed flags.
func (uc *implUseCase) ingest(ctx context.Context, cand gemini.Candidate, source model.SourceType) ([]model.Event, error) {
	base := normalize.Candidate(cand, uc.now())
	base.SourceType = source

	instances := expand.Series(base, uc.now())
	ids := make(map[string]struct{}, len(instances))
	for i := range instances {
		instances[i].ID = uuid.NewString()
		ids[instances[i].ID] = struct{}{}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.Insert(ctx, instances); err != nil {
		uc.l.Errorf(ctx, "event.usecase.ingest.Insert: %v", err)
		return nil, err
	}

	if err := uc.refreshFlags(ctx); err != nil {
		return nil, err
	}

	all, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.ingest.List: %v", err)
		return nil, err
	}

	stored := make([]model.Event, 0, len(instances))
	for _, ev := range all {
		if _, ok := ids[ev.ID]; ok {
			stored = append(stored, ev)
		}
	}
	return stored, nil
}
