// Package detect derives the volatile past/conflict flags for the whole
// event set. It runs after every store mutation over the full collection —
// correctness over incrementality at tens-to-hundreds of events.
package detect

import "lifeplanner/internal/model"

// FlagUpdate carries the flags of one event whose value actually changed.
// Nil fields are already correct in the store; writing only diffs avoids
// update churn.
type FlagUpdate struct {
	ID         string
	IsPast     *bool
	IsConflict *bool
}

// Flags computes the desired past/conflict flags against today (canonical
// YYYY-MM-DD) and returns one update per event whose stored flags differ.
//
// Past: dated strictly before today; undated events are never past.
// Conflict: two non-past events on the same date whose [start, end) ranges
// overlap, or, when either lacks an end time, whose start times coincide
// exactly.
// Past events never participate in conflict detection, even against other
// past events.
func Flags(events []model.Event, today string) []FlagUpdate {
	conflicting := conflictIDs(events, today)

	var updates []FlagUpdate
	for _, ev := range events {
		isPast := isPast(ev, today)
		isConflict := conflicting[ev.ID]

		var upd FlagUpdate
		changed := false
		if ev.IsPast != isPast {
			v := isPast
			upd.IsPast = &v
			changed = true
		}
		if ev.IsConflict != isConflict {
			v := isConflict
			upd.IsConflict = &v
			changed = true
		}
		if changed {
			upd.ID = ev.ID
			updates = append(updates, upd)
		}
	}
	return updates
}

// isPast relies on lexicographic comparison, valid for canonical dates.
func isPast(ev model.Event, today string) bool {
	return ev.Date != "" && ev.Date < today
}

func conflictIDs(events []model.Event, today string) map[string]bool {
	byDate := make(map[string][]model.Event)
	for _, ev := range events {
		if ev.Date != "" {
			byDate[ev.Date] = append(byDate[ev.Date], ev)
		}
	}

	conflicting := make(map[string]bool)
	for _, day := range byDate {
		if len(day) < 2 {
			continue
		}
		for i := 0; i < len(day); i++ {
			for j := i + 1; j < len(day); j++ {
				a, b := day[i], day[j]
				if isPast(a, today) || isPast(b, today) {
					continue
				}
				if pairConflicts(a, b) {
					conflicting[a.ID] = true
					conflicting[b.ID] = true
				}
			}
		}
	}
	return conflicting
}

// pairConflicts checks one same-date pair. Half-open interval semantics:
// touching endpoints do not conflict. When either side lacks an end time,
// only exact textual start equality counts; near misses are deliberately
// not flagged.
func pairConflicts(a, b model.Event) bool {
	if a.StartTime != "" && a.EndTime != "" && b.StartTime != "" && b.EndTime != "" {
		return a.StartTime < b.EndTime && a.EndTime > b.StartTime
	}
	if a.StartTime != "" && b.StartTime != "" {
		return a.StartTime == b.StartTime
	}
	return false
}
