package gemini

import "context"

// IGemini defines the interface for the extraction collaborator.
// Implementations are safe for concurrent use.
type IGemini interface {
	// AnalyzeText extracts a candidate event from free text.
	AnalyzeText(ctx context.Context, text string) (Candidate, error)

	// AnalyzeDocument extracts a candidate event from a base64 document or
	// image payload with the given MIME type.
	AnalyzeDocument(ctx context.Context, dataBase64, mimeType string) (Candidate, error)

	// Transcribe converts a base64 audio payload to plain text.
	Transcribe(ctx context.Context, audioBase64, mimeType string) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Gemini client with the given configuration
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
