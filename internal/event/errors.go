package event

import "errors"

// Domain-specific errors for the event package.
var (
	// ErrEmptyInput is returned when an analyze operation receives no text
	// or payload to work with.
	ErrEmptyInput = errors.New("input is empty")

	// ErrNoEventsExtracted is the "nothing extracted" outcome. It is a
	// distinct signal, not a failure: the collaborator answered but found no
	// event in the input.
	ErrNoEventsExtracted = errors.New("no events extracted from input")

	// ErrAnalysisFailed wraps collaborator/transport failures. It is
	// user-visibly different from ErrNoEventsExtracted.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrNoConflicts is returned when the resolution planner is invoked
	// while no event is flagged as conflicting. Observably different from a
	// plan that emptied out after work.
	ErrNoConflicts = errors.New("no conflicting events to resolve")

	// ErrInvalidCategory is returned for category filter values outside the
	// known enumeration.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidAction is returned when applying a resolution with an
	// unknown action.
	ErrInvalidAction = errors.New("invalid resolution action")

	// ErrNotConflicting is returned when applying a resolution to an event
	// that is not currently flagged as conflicting. Remediation is scoped
	// to flagged events; an ordinary edit or delete goes through Update and
	// Delete instead.
	ErrNotConflicting = errors.New("event is not conflicting")
)
