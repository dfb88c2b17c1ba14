// Package memory is the default event store backend: the session-scoped
// in-memory collection the rest of the core operates over.
package memory

import (
	"context"
	"sync"

	"lifeplanner/internal/event/repository"
	"lifeplanner/internal/model"
)

type implRepository struct {
	mu     sync.RWMutex
	events []model.Event
}

// New creates an empty in-memory event repository.
func New() repository.Repository {
	return &implRepository{}
}

// Insert prepends the batch, keeping its internal order at the front.
func (r *implRepository) Insert(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	merged := make([]model.Event, 0, len(events)+len(r.events))
	merged = append(merged, events...)
	merged = append(merged, r.events...)
	r.events = merged
	return nil
}

func (r *implRepository) Update(ctx context.Context, id string, opt repository.UpdateEventOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID == id {
			repository.Apply(&r.events[i], opt)
			return r.events[i], nil
		}
	}
	return model.Event{}, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ev := range r.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return model.Event{}, nil
}

func (r *implRepository) List(ctx context.Context) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}
