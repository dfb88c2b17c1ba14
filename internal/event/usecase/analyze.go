package usecase

import (
	"context"
	"fmt"
	"strings"

	"lifeplanner/internal/event"
	"lifeplanner/internal/model"
	"lifeplanner/pkg/gemini"
)

func (uc *implUseCase) AnalyzeText(ctx context.Context, input event.AnalyzeTextInput) (event.AnalyzeOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return event.AnalyzeOutput{}, event.ErrEmptyInput
	}

	cand, err := uc.extractText(ctx, text)
	if err != nil {
		return event.AnalyzeOutput{}, err
	}

	return uc.finishAnalyze(ctx, cand, model.SourceText, "")
}

func (uc *implUseCase) AnalyzeDocument(ctx context.Context, input event.AnalyzeDocumentInput) (event.AnalyzeOutput, error) {
	if strings.TrimSpace(input.DataBase64) == "" {
		return event.AnalyzeOutput{}, event.ErrEmptyInput
	}

	key := cacheKey("document", input.MimeType, input.DataBase64)
	cand, ok := uc.cache.Get(key)
	if !ok {
		var err error
		cand, err = uc.llm.AnalyzeDocument(ctx, input.DataBase64, input.MimeType)
		if err != nil {
			uc.l.Errorf(ctx, "event.usecase.AnalyzeDocument.llm: %v", err)
			return event.AnalyzeOutput{}, fmt.Errorf("%w: %v", event.ErrAnalysisFailed, err)
		}
		uc.cache.Add(key, cand)
	}

	return uc.finishAnalyze(ctx, cand, model.SourceFile, "")
}

func (uc *implUseCase) AnalyzeVoice(ctx context.Context, input event.AnalyzeVoiceInput) (event.AnalyzeOutput, error) {
	if strings.TrimSpace(input.AudioBase64) == "" {
		return event.AnalyzeOutput{}, event.ErrEmptyInput
	}

	transcript, err := uc.llm.Transcribe(ctx, input.AudioBase64, input.MimeType)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.AnalyzeVoice.transcribe: %v", err)
		return event.AnalyzeOutput{}, fmt.Errorf("%w: %v", event.ErrAnalysisFailed, err)
	}
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return event.AnalyzeOutput{}, event.ErrNoEventsExtracted
	}

	cand, err := uc.extractText(ctx, transcript)
	if err != nil {
		return event.AnalyzeOutput{Transcript: transcript}, err
	}

	return uc.finishAnalyze(ctx, cand, model.SourceText, transcript)
}

// extractText resolves a text submission to a candidate, consulting the
// duplicate-submission cache before calling the LLM.
func (uc *implUseCase) extractText(ctx context.Context, text string) (gemini.Candidate, error) {
	key := cacheKey("text", text)
	if cand, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "event.usecase.extractText: cache hit")
		return cand, nil
	}

	cand, err := uc.llm.AnalyzeText(ctx, text)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.extractText.llm: %v", err)
		return gemini.Candidate{}, fmt.Errorf("%w: %v", event.ErrAnalysisFailed, err)
	}

	uc.cache.Add(key, cand)
	return cand, nil
}

func (uc *implUseCase) finishAnalyze(ctx context.Context, cand gemini.Candidate, source model.SourceType, transcript string) (event.AnalyzeOutput, error) {
	if !cand.IsEvent {
		return event.AnalyzeOutput{Transcript: transcript}, event.ErrNoEventsExtracted
	}

	events, err := uc.ingest(ctx, cand, source)
	if err != nil {
		return event.AnalyzeOutput{}, err
	}
	return event.AnalyzeOutput{Events: events, Transcript: transcript}, nil
}
