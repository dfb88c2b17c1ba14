package event

import (
	"lifeplanner/internal/model"
	"lifeplanner/pkg/gemini"
)

// AnalyzeTextInput is the input for free-text extraction.
type AnalyzeTextInput struct {
	Text string
}

// AnalyzeDocumentInput is the input for document/image extraction.
type AnalyzeDocumentInput struct {
	DataBase64 string
	MimeType   string
}

// AnalyzeVoiceInput is the input for voice extraction. The audio is
// transcribed first, then follows the text path.
type AnalyzeVoiceInput struct {
	AudioBase64 string
	MimeType    string
}

// AnalyzeOutput is the result of any analyze operation: the stored event
// instances produced from one extraction (one for plain events, several for
// an expanded recurrence series).
type AnalyzeOutput struct {
	Events []model.Event

	// Transcript is set for voice input only.
	Transcript string
}

// CreateInput is a manually supplied candidate, bypassing extraction but
// running the same normalize/expand pipeline.
type CreateInput struct {
	Candidate gemini.Candidate
}

// CreateOutput is the result of a manual add.
type CreateOutput struct {
	Events []model.Event
}

// ListInput carries the two view filters. Category "" or "ALL" means no
// category filter; Date "" means no selected date.
type ListInput struct {
	Category string
	Date     string
}

// ListOutput is the projected display view.
type ListOutput struct {
	Events []model.Event
}

// UpdateInput is a partial edit of one event. Nil pointers leave the field
// unchanged; pointers to "" clear optional fields.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Category    *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Amount      *string
	Currency    *string
}

// UpdateOutput reports the post-update event. Found is false when the id did
// not match anything (a silent no-op by contract).
type UpdateOutput struct {
	Event model.Event
	Found bool
}

// PlanOutput is the remediation plan over currently conflicting events.
type PlanOutput struct {
	Resolutions []model.Resolution
}

// ApplyResolutionInput applies one remediation. DateOverride, when set,
// replaces the planner's suggested date for a reschedule.
type ApplyResolutionInput struct {
	EventID      string
	Action       string
	DateOverride string
}

// ApplyResolutionOutput reports the remediation outcome.
type ApplyResolutionOutput struct {
	Deleted bool
	Event   model.Event
}
