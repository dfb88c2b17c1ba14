package usecase

import (
	"context"
	"time"

	"lifeplanner/internal/event/repository/memory"
	"lifeplanner/pkg/gemini"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

// mockGemini scripts the extraction collaborator. Call counters let tests
// assert cache behavior.
type mockGemini struct {
	candidate  gemini.Candidate
	transcript string
	err        error

	textCalls       int
	documentCalls   int
	transcribeCalls int
}

func (m *mockGemini) AnalyzeText(ctx context.Context, text string) (gemini.Candidate, error) {
	m.textCalls++
	return m.candidate, m.err
}

func (m *mockGemini) AnalyzeDocument(ctx context.Context, dataBase64, mimeType string) (gemini.Candidate, error) {
	m.documentCalls++
	return m.candidate, m.err
}

func (m *mockGemini) Transcribe(ctx context.Context, audioBase64, mimeType string) (string, error) {
	m.transcribeCalls++
	return m.transcript, m.err
}

func (m *mockGemini) Model() string { return "mock" }

// fixedClock pins today to 2025-06-10 for deterministic flag computation.
var fixedClock = func() time.Time {
	return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
}

func newTestUseCase(llm gemini.IGemini) *implUseCase {
	return New(noopLogger{}, llm, memory.New(), fixedClock)
}
