package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

type geminiImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
	limiter    *rate.Limiter
	now        func() time.Time
}

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = DefaultRequestsPerMinute
	}

	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      model,
		apiURL:     apiURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		now:        time.Now,
	}
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// AnalyzeText extracts a candidate event from free text.
func (g *geminiImpl) AnalyzeText(ctx context.Context, text string) (Candidate, error) {
	req := generateRequest{
		SystemInstruction: &content{
			Parts: []part{{Text: buildSystemInstruction(g.now())}},
		},
		Contents: []content{
			{Parts: []part{{Text: text}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:      0.2, // deterministic JSON output
			ResponseMimeType: "application/json",
			ResponseSchema:   candidateSchema(),
		},
	}

	return g.extract(ctx, req)
}

// AnalyzeDocument extracts a candidate event from a base64 document/image.
func (g *geminiImpl) AnalyzeDocument(ctx context.Context, dataBase64, mimeType string) (Candidate, error) {
	req := generateRequest{
		SystemInstruction: &content{
			Parts: []part{{Text: buildSystemInstruction(g.now())}},
		},
		Contents: []content{
			{Parts: []part{
				{InlineData: &inlineData{Data: dataBase64, MimeType: mimeType}},
				{Text: documentPrompt},
			}},
		},
		GenerationConfig: &generationConfig{
			Temperature:      0.2,
			ResponseMimeType: "application/json",
			ResponseSchema:   candidateSchema(),
		},
	}

	return g.extract(ctx, req)
}

// Transcribe converts a base64 audio payload to plain text.
func (g *geminiImpl) Transcribe(ctx context.Context, audioBase64, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	req := generateRequest{
		Contents: []content{
			{Parts: []part{
				{InlineData: &inlineData{Data: audioBase64, MimeType: mimeType}},
				{Text: transcribePrompt},
			}},
		},
	}

	resp, err := g.callAPI(ctx, req)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(firstText(resp)), nil
}

func (g *geminiImpl) extract(ctx context.Context, req generateRequest) (Candidate, error) {
	resp, err := g.callAPI(ctx, req)
	if err != nil {
		return Candidate{}, err
	}

	raw := firstText(resp)
	if raw == "" {
		return Candidate{}, fmt.Errorf("gemini: empty response")
	}

	var cand Candidate
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &cand); err != nil {
		return Candidate{}, fmt.Errorf("gemini: failed to parse response JSON: %w", err)
	}

	return cand, nil
}

// callAPI sends a request to the Gemini API
func (g *geminiImpl) callAPI(ctx context.Context, req generateRequest) (*generateResponse, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("gemini: rate limit wait: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, g.model, g.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}

func firstText(resp *generateResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return resp.Candidates[0].Content.Parts[0].Text
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	matches := fenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
