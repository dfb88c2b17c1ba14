package memory

import (
	"context"
	"testing"

	"lifeplanner/internal/event/repository"
	"lifeplanner/internal/model"
)

func TestInsertPrepends(t *testing.T) {
	ctx := context.Background()
	repo := New()

	if err := repo.Insert(ctx, []model.Event{{ID: "old"}}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := repo.Insert(ctx, []model.Event{{ID: "new-1"}, {ID: "new-2"}}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	events, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"new-1", "new-2", "old"}
	if len(events) != len(want) {
		t.Fatalf("len = %d, want %d", len(events), len(want))
	}
	for i, id := range want {
		if events[i].ID != id {
			t.Errorf("events[%d].ID = %q, want %q (newest-first, batch order kept)", i, events[i].ID, id)
		}
	}
}

func TestUpdateMerges(t *testing.T) {
	ctx := context.Background()
	repo := New()
	repo.Insert(ctx, []model.Event{{ID: "e1", Title: "Old", Date: "2025-04-01", StartTime: "09:00"}})

	title := "New"
	conflict := true
	got, err := repo.Update(ctx, "e1", repository.UpdateEventOptions{
		Title:      &title,
		IsConflict: &conflict,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got.Title != "New" || !got.IsConflict {
		t.Errorf("merged event = %+v", got)
	}
	if got.Date != "2025-04-01" || got.StartTime != "09:00" {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestUpdateClearsWithEmptyPointer(t *testing.T) {
	ctx := context.Background()
	repo := New()
	repo.Insert(ctx, []model.Event{{ID: "e1", AISuggestion: "move it"}})

	clear := ""
	got, err := repo.Update(ctx, "e1", repository.UpdateEventOptions{AISuggestion: &clear})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.AISuggestion != "" {
		t.Errorf("suggestion = %q, want cleared", got.AISuggestion)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := New()
	repo.Insert(ctx, []model.Event{{ID: "e1", Title: "Keep"}})

	title := "Nope"
	got, err := repo.Update(ctx, "ghost", repository.UpdateEventOptions{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.ID != "" {
		t.Errorf("want zero-value event for unknown id, got %+v", got)
	}

	events, _ := repo.List(ctx)
	if len(events) != 1 || events[0].Title != "Keep" {
		t.Errorf("store changed by unknown-id update: %+v", events)
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := New()
	repo.Insert(ctx, []model.Event{{ID: "e1"}})

	if err := repo.Delete(ctx, "ghost"); err != nil {
		t.Fatalf("Delete unknown id: %v", err)
	}

	events, _ := repo.List(ctx)
	if len(events) != 1 {
		t.Errorf("store changed by unknown-id delete: %+v", events)
	}
}

func TestDeleteRemoves(t *testing.T) {
	ctx := context.Background()
	repo := New()
	repo.Insert(ctx, []model.Event{{ID: "e1"}, {ID: "e2"}})

	if err := repo.Delete(ctx, "e1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	events, _ := repo.List(ctx)
	if len(events) != 1 || events[0].ID != "e2" {
		t.Errorf("events after delete = %+v", events)
	}

	got, _ := repo.Get(ctx, "e1")
	if got.ID != "" {
		t.Error("deleted event still retrievable")
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := New()
	repo.Insert(ctx, []model.Event{{ID: "e1", Title: "Original"}})

	events, _ := repo.List(ctx)
	events[0].Title = "Mutated"

	again, _ := repo.List(ctx)
	if again[0].Title != "Original" {
		t.Error("List must return a copy, not the backing slice")
	}
}
