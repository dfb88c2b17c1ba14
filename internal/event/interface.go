package event

import "context"

// UseCase defines the business logic interface for the event domain.
//
// Every mutation recomputes the past/conflict flags over the full event set
// before returning, so readers never observe stale flags.
type UseCase interface {
	// AnalyzeText extracts events from free text and stores them.
	AnalyzeText(ctx context.Context, input AnalyzeTextInput) (AnalyzeOutput, error)

	// AnalyzeDocument extracts events from a base64 document/image payload.
	AnalyzeDocument(ctx context.Context, input AnalyzeDocumentInput) (AnalyzeOutput, error)

	// AnalyzeVoice transcribes audio and runs the text path on the result.
	AnalyzeVoice(ctx context.Context, input AnalyzeVoiceInput) (AnalyzeOutput, error)

	// Create stores a manually supplied candidate through the same pipeline.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// List returns the projected display view for the given filters.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// ListAll returns every event in storage order (newest first).
	ListAll(ctx context.Context) (ListOutput, error)

	// Update merges a partial edit into one event. Unknown ids are a no-op.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)

	// Delete removes one event. Unknown ids are a no-op.
	Delete(ctx context.Context, id string) error

	// PlanResolutions proposes a remediation per conflicting event.
	// Returns ErrNoConflicts when nothing is flagged.
	PlanResolutions(ctx context.Context) (PlanOutput, error)

	// ApplyResolution applies one remediation back into the store.
	ApplyResolution(ctx context.Context, input ApplyResolutionInput) (ApplyResolutionOutput, error)

	// RefreshIssues recomputes past/conflict flags without a store mutation.
	// Run at day rollover so yesterday's events stop participating in
	// conflicts.
	RefreshIssues(ctx context.Context) error
}

// Planner is the view of the UseCase the scheduler needs.
type Planner interface {
	RefreshIssues(ctx context.Context) error
}
