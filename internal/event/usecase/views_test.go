package usecase

import (
	"context"
	"errors"
	"testing"

	"lifeplanner/internal/event"
	"lifeplanner/pkg/gemini"
)

// seed adds a manual event and returns its stored id.
func seed(t *testing.T, uc *implUseCase, cand gemini.Candidate) string {
	t.Helper()
	out, err := uc.Create(context.Background(), event.CreateInput{Candidate: cand})
	if err != nil {
		t.Fatalf("seed %q: %v", cand.Title, err)
	}
	return out.Events[0].ID
}

func TestListDefaultsToFutureOnly(t *testing.T) {
	uc := newTestUseCase(&mockGemini{})
	seed(t, uc, gemini.Candidate{Title: "Old checkup", Date: "2025-06-01"})
	seed(t, uc, gemini.Candidate{Title: "Today", Date: "2025-06-10"})
	seed(t, uc, gemini.Candidate{Title: "Upcoming", Date: "2025-06-20"})

	out, err := uc.List(context.Background(), event.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(out.Events))
	}
	// Ascending by date.
	if out.Events[0].Title != "Today" || out.Events[1].Title != "Upcoming" {
		t.Errorf("unexpected order: %q, %q", out.Events[0].Title, out.Events[1].Title)
	}
}

func TestListSelectedDateShowsPast(t *testing.T) {
	uc := newTestUseCase(&mockGemini{})
	seed(t, uc, gemini.Candidate{Title: "Old checkup", Date: "2025-06-01"})

	out, err := uc.List(context.Background(), event.ListInput{Date: "2025-06-01"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Events) != 1 || !out.Events[0].IsPast {
		t.Fatalf("expected the past event for its date, got %+v", out.Events)
	}
}

func TestListFiltersByCategory(t *testing.T) {
	uc := newTestUseCase(&mockGemini{})
	seed(t, uc, gemini.Candidate{Title: "Checkup", Date: "2025-06-20", Category: "HEALTH"})
	seed(t, uc, gemini.Candidate{Title: "Rent", Date: "2025-06-25", Category: "FINANCE"})

	out, err := uc.List(context.Background(), event.ListInput{Category: "HEALTH"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Events) != 1 || out.Events[0].Title != "Checkup" {
		t.Fatalf("unexpected view: %+v", out.Events)
	}
}

func TestListRejectsUnknownCategory(t *testing.T) {
	uc := newTestUseCase(&mockGemini{})

	_, err := uc.List(context.Background(), event.ListInput{Category: "GARDENING"})
	if !errors.Is(err, event.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestListCollapsesSeries(t *testing.T) {
	mock := &mockGemini{candidate: gemini.Candidate{
		IsEvent: true,
		Title:   "Yoga",
		Date:    "2025-06-12",
		Recurrence: &gemini.CandidateRecurrence{
			Frequency: "WEEKLY",
			Count:     3,
		},
	}}
	uc := newTestUseCase(mock)
	if _, err := uc.AnalyzeText(context.Background(), event.AnalyzeTextInput{Text: "yoga weekly"}); err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	out, err := uc.List(context.Background(), event.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Events) != 1 {
		t.Fatalf("series should collapse to 1 row, got %d", len(out.Events))
	}
	if out.Events[0].Date != "2025-06-12" {
		t.Errorf("expected the soonest instance, got %s", out.Events[0].Date)
	}

	// Selecting a date disables collapsing.
	selected, err := uc.List(context.Background(), event.ListInput{Date: "2025-06-19"})
	if err != nil {
		t.Fatalf("List selected: %v", err)
	}
	if len(selected.Events) != 1 || selected.Events[0].SeriesIndex != 2 {
		t.Fatalf("expected the second instance, got %+v", selected.Events)
	}
}

func TestListAllKeepsStorageOrder(t *testing.T) {
	uc := newTestUseCase(&mockGemini{})
	seed(t, uc, gemini.Candidate{Title: "First", Date: "2025-06-20"})
	seed(t, uc, gemini.Candidate{Title: "Second", Date: "2025-06-15"})

	out, err := uc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(out.Events) != 2 || out.Events[0].Title != "Second" {
		t.Fatalf("expected newest first, got %+v", out.Events)
	}
}

func TestUpdateMergesAndRedetects(t *testing.T) {
	uc := newTestUseCase(&mockGemini{})
	a := seed(t, uc, gemini.Candidate{Title: "A", Date: "2025-06-20", StartTime: "10:00", EndTime: "11:00"})
	seed(t, uc, gemini.Candidate{Title: "B", Date: "2025-06-21", StartTime: "10:30", EndTime: "11:30"})

	// Move A onto B's date; the overlap must be flagged on both.
	newDate := "2025-06-21"
	out, err := uc.Update(context.Background(), event.UpdateInput{ID: a, Date: &newDate})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !out.Found {
		t.Fatal("expected Found")
	}
	if !out.Event.IsConflict {
		t.Error("moved event should be flagged as conflicting")
	}

	all, _ := uc.ListAll(context.Background())
	for _, ev := range all.Events {
		if !ev.IsConflict {
			t.Errorf("%s should be flagged", ev.Title)
		}
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	uc := newTestUseCase(&mockGemini{})

	title := "ghost"
	out, err := uc.Update(context.Background(), event.UpdateInput{ID: "nope", Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Found {
		t.Error("unknown id must report Found=false")
	}
}

func TestDeleteClearsCounterpartFlag(t *testing.T) {
	uc := newTestUseCase(&mockGemini{})
	a := seed(t, uc, gemini.Candidate{Title: "A", Date: "2025-06-20", StartTime: "10:00", EndTime: "11:00"})
	b := seed(t, uc, gemini.Candidate{Title: "B", Date: "2025-06-20", StartTime: "10:30", EndTime: "11:30"})

	if err := uc.Delete(context.Background(), a); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	ev, err := uc.repo.Get(context.Background(), b)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ev.IsConflict {
		t.Error("surviving event should no longer be flagged")
	}
}
