package gemini

import (
	"errors"
	"net/http"
)

// Config configures the Gemini client.
type Config struct {
	APIKey string

	// Model defaults to DefaultModel when empty.
	Model string

	// APIURL defaults to DefaultAPIURL when empty. Overridden in tests.
	APIURL string

	// HTTPClient defaults to a client with DefaultTimeout.
	HTTPClient *http.Client

	// RequestsPerMinute caps outbound calls; defaults to
	// DefaultRequestsPerMinute. Zero or negative uses the default.
	RequestsPerMinute int
}

// Validate checks required configuration.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("gemini: API key is required")
	}
	return nil
}

// Candidate is the raw structured payload the extraction model returns for
// one input. Every optional field may be absent, empty, or the literal
// string "null" — normalization is mandatory before the value reaches the
// event model.
type Candidate struct {
	IsEvent        bool                 `json:"is_event"`
	IsRenewal      bool                 `json:"is_renewal"`
	Title          string               `json:"title"`
	Date           string               `json:"date"`
	StartTime      string               `json:"start_time"`
	EndTime        string               `json:"end_time"`
	ExpirationDate string               `json:"expiration_date"`
	Amount         string               `json:"amount"`
	Currency       string               `json:"currency"`
	Description    string               `json:"description"`
	Category       string               `json:"category"`
	Recurrence     *CandidateRecurrence `json:"recurrence,omitempty"`
}

// CandidateRecurrence mirrors the recurrence object of the response schema.
type CandidateRecurrence struct {
	Frequency string `json:"frequency"`
	Interval  int    `json:"interval,omitempty"`
	Until     string `json:"until,omitempty"`
	Count     int    `json:"count,omitempty"`
}

// --- wire types (Gemini REST API) ---

type generateRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature      float64        `json:"temperature,omitempty"`
	MaxOutputTokens  int            `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []responseCandidate `json:"candidates"`
}

type responseCandidate struct {
	Content content `json:"content"`
}
