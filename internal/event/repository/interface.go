package repository

import (
	"context"

	"lifeplanner/internal/model"
)

// Repository is the authoritative ordered event collection. Backends keep
// newest-first storage order: Insert prepends, List returns that order.
// Update and Delete on unknown ids are silent no-ops — concurrent deletion
// races are expected and harmless.
type Repository interface {
	// Insert prepends a batch (or single event) to the front of the
	// collection, preserving the batch's internal order.
	Insert(ctx context.Context, events []model.Event) error

	// Update merges opt into the matching event and returns the result.
	// Not-found returns a zero-value Event (ID == "") and no error.
	Update(ctx context.Context, id string, opt UpdateEventOptions) (model.Event, error)

	// Delete removes the matching event. Not-found is a no-op.
	Delete(ctx context.Context, id string) error

	// Get returns one event; zero-value Event (ID == "") when not found.
	Get(ctx context.Context, id string) (model.Event, error)

	// List returns a snapshot of every event in storage order.
	List(ctx context.Context) ([]model.Event, error)
}
