// Package project derives the presentation views from the event set. Pure
// functions, no mutation: projecting twice with the same inputs yields the
// same list.
package project

import (
	"sort"

	"lifeplanner/internal/model"
)

// Filter carries the two user view inputs. Category "" or "ALL" disables
// category filtering; Date "" means no selected date.
type Filter struct {
	Category string
	Date     string
}

// CategoryAll disables the category filter.
const CategoryAll = "ALL"

// View applies filter, sort, and series collapsing in order and returns the
// display list. The input slice is never modified.
func View(events []model.Event, filter Filter, today string) []model.Event {
	kept := keep(events, filter, today)
	sortByDate(kept)
	if filter.Date != "" {
		// An explicit date selection shows every matching instance.
		return kept
	}
	return collapseSeries(kept)
}

// keep applies the category filter plus either the exact selected date or
// the future-only default. Undated events always pass the default view.
func keep(events []model.Event, filter Filter, today string) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if filter.Category != "" && filter.Category != CategoryAll && string(ev.Category) != filter.Category {
			continue
		}

		if filter.Date != "" {
			// Selection bypasses the future-only default: past instances of
			// that date are shown too.
			if ev.Date == filter.Date {
				out = append(out, ev)
			}
			continue
		}

		if ev.Date == "" || ev.Date >= today {
			out = append(out, ev)
		}
	}
	return out
}

// sortByDate sorts ascending by date string, undated events last. Stable, so
// date ties keep arrival order.
func sortByDate(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].Date, events[j].Date
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a < b
	})
}

// collapseSeries keeps only the first (soonest, post-sort) instance of each
// recurrence group. Ungrouped events are never dropped.
func collapseSeries(events []model.Event) []model.Event {
	seen := make(map[string]bool)
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if ev.GroupID != "" {
			if seen[ev.GroupID] {
				continue
			}
			seen[ev.GroupID] = true
		}
		out = append(out, ev)
	}
	return out
}
