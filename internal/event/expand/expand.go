// Package expand turns one normalized base event plus an optional recurrence
// rule into an ordered series of dated instances sharing a group identity.
package expand

import (
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"lifeplanner/internal/model"
	"lifeplanner/pkg/datemath"
)

const (
	// defaultCount caps a series when the rule does not say how many.
	defaultCount = 20

	// defaultUntilMonths bounds a series when the rule has no end date.
	defaultUntilMonths = 3
)

var frequencies = map[model.Frequency]rrule.Frequency{
	model.FreqDaily:  rrule.DAILY,
	model.FreqWeekly: rrule.WEEKLY,
}

// monthsPerStep gives the calendar-month stride for the frequencies that
// step by months rather than days.
var monthsPerStep = map[model.Frequency]int{
	model.FreqMonthly: 1,
	model.FreqYearly:  12,
}

// Series expands base into its dated instances. Without a recurrence rule
// the base event is returned alone and ungrouped. With one, instances are
// emitted from the base date stepping by interval units of the frequency,
// stopping once the date passes the until bound (inclusive) or the count
// cap is hit, whichever comes first.
//
// MONTHLY and YEARLY step with end-of-month clamping: every interval emits
// exactly one instance, and a month-end base date lands on the last day of
// shorter months (Jan 31, Feb 28, Mar 28, ...). RFC-5545 BYMONTHDAY rules
// would instead skip months missing the base day, so those frequencies do
// not go through the rrule engine.
//
// Degradations (never errors):
//   - unparseable base date: the single base event, no series
//   - unrecognized frequency: expansion halts after the first emission, so
//     the result is a one-instance series
//   - a bound that excludes every occurrence: the single base event, dated
//     and ungrouped — expansion never returns an empty sequence, even where
//     a strict reading of the bound would
func Series(base model.Event, now time.Time) []model.Event {
	rule := base.Recurrence
	if rule == nil {
		return []model.Event{base}
	}

	start, err := datemath.ParseDate(base.Date)
	if err != nil {
		return []model.Event{base}
	}

	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}

	count := rule.Count
	if count < 1 {
		count = defaultCount
	}

	until, err := datemath.ParseDate(rule.Until)
	if err != nil {
		until = datemath.AddMonths(now, defaultUntilMonths)
	}

	var occurrences []time.Time
	switch {
	case monthsPerStep[rule.Frequency] > 0:
		occurrences = monthOccurrences(start, until, interval*monthsPerStep[rule.Frequency], count)

	default:
		freq, ok := frequencies[rule.Frequency]
		if !ok {
			// Defensive stop: the first instance is emitted before the date
			// is ever advanced, so an unknown frequency yields a series of
			// one.
			one := base
			one.GroupID = uuid.NewString()
			one.SeriesIndex = 1
			one.SeriesTotal = 1
			return []model.Event{one}
		}

		r, rerr := rrule.NewRRule(rrule.ROption{
			Freq:     freq,
			Interval: interval,
			Count:    count,
			Until:    until,
			Dtstart:  start,
		})
		if rerr != nil {
			return []model.Event{base}
		}
		occurrences = r.All()
	}

	if len(occurrences) == 0 {
		return []model.Event{base}
	}

	groupID := uuid.NewString()
	series := make([]model.Event, 0, len(occurrences))
	for i, occ := range occurrences {
		instance := base
		instance.Date = datemath.FormatDate(occ)
		instance.GroupID = groupID
		instance.SeriesIndex = i + 1
		series = append(series, instance)
	}

	// Total is only known once the loop terminates.
	for i := range series {
		series[i].SeriesTotal = len(series)
	}

	return series
}

// monthOccurrences emits one date per stride of months, clamping to the
// end of shorter months as it goes: a clamped date stays clamped (Jan 31
// steps to Feb 28, then Mar 28).
func monthOccurrences(start, until time.Time, months, count int) []time.Time {
	var out []time.Time
	for d := start; len(out) < count && !d.After(until); d = datemath.AddMonthsClamped(d, months) {
		out = append(out, d)
	}
	return out
}
