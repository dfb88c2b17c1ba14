package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"lifeplanner/config"
	"lifeplanner/internal/event"
	"lifeplanner/internal/middleware"
	"lifeplanner/internal/model"
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

// mockUseCase scripts one output/error pair per operation.
type mockUseCase struct {
	analyzeOut event.AnalyzeOutput
	analyzeErr error
	createOut  event.CreateOutput
	createErr  error
	listOut    event.ListOutput
	listErr    error
	updateOut  event.UpdateOutput
	updateErr  error
	deleteErr  error
	planOut    event.PlanOutput
	planErr    error
	applyOut   event.ApplyResolutionOutput
	applyErr   error
}

func (m *mockUseCase) AnalyzeText(ctx context.Context, input event.AnalyzeTextInput) (event.AnalyzeOutput, error) {
	return m.analyzeOut, m.analyzeErr
}

func (m *mockUseCase) AnalyzeDocument(ctx context.Context, input event.AnalyzeDocumentInput) (event.AnalyzeOutput, error) {
	return m.analyzeOut, m.analyzeErr
}

func (m *mockUseCase) AnalyzeVoice(ctx context.Context, input event.AnalyzeVoiceInput) (event.AnalyzeOutput, error) {
	return m.analyzeOut, m.analyzeErr
}

func (m *mockUseCase) Create(ctx context.Context, input event.CreateInput) (event.CreateOutput, error) {
	return m.createOut, m.createErr
}

func (m *mockUseCase) List(ctx context.Context, input event.ListInput) (event.ListOutput, error) {
	return m.listOut, m.listErr
}

func (m *mockUseCase) ListAll(ctx context.Context) (event.ListOutput, error) {
	return m.listOut, m.listErr
}

func (m *mockUseCase) Update(ctx context.Context, input event.UpdateInput) (event.UpdateOutput, error) {
	return m.updateOut, m.updateErr
}

func (m *mockUseCase) Delete(ctx context.Context, id string) error {
	return m.deleteErr
}

func (m *mockUseCase) PlanResolutions(ctx context.Context) (event.PlanOutput, error) {
	return m.planOut, m.planErr
}

func (m *mockUseCase) ApplyResolution(ctx context.Context, input event.ApplyResolutionInput) (event.ApplyResolutionOutput, error) {
	return m.applyOut, m.applyErr
}

func (m *mockUseCase) RefreshIssues(ctx context.Context) error { return nil }

func newTestRouter(uc event.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(noopLogger{}, config.RateLimitConfig{Enabled: false})
	RegisterRoutes(r.Group("/api/v1/planner"), New(noopLogger{}, uc), mw)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeTextOK(t *testing.T) {
	uc := &mockUseCase{analyzeOut: event.AnalyzeOutput{Events: []model.Event{{
		ID:       "e1",
		Title:    "Dentist",
		Date:     "2025-06-20",
		Category: model.CategoryHealth,
	}}}}
	r := newTestRouter(uc)

	w := do(t, r, http.MethodPost, "/api/v1/planner/analyze/text", `{"text":"dentist friday"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data analyzeResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data.Events) != 1 || resp.Data.Events[0].ID != "e1" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestAnalyzeTextMissingBody(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := do(t, r, http.MethodPost, "/api/v1/planner/analyze/text", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAnalyzeTextNoEventFound(t *testing.T) {
	uc := &mockUseCase{analyzeErr: event.ErrNoEventsExtracted}
	r := newTestRouter(uc)

	w := do(t, r, http.MethodPost, "/api/v1/planner/analyze/text", `{"text":"nice weather"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestAnalyzeTextBackendFailure(t *testing.T) {
	uc := &mockUseCase{analyzeErr: event.ErrAnalysisFailed}
	r := newTestRouter(uc)

	w := do(t, r, http.MethodPost, "/api/v1/planner/analyze/text", `{"text":"dentist"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

func TestListOK(t *testing.T) {
	uc := &mockUseCase{listOut: event.ListOutput{Events: []model.Event{
		{ID: "a", Title: "One"},
		{ID: "b", Title: "Two"},
	}}}
	r := newTestRouter(uc)

	w := do(t, r, http.MethodGet, "/api/v1/planner/events?category=ALL", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data listResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Data.Total)
	}
}

func TestListInvalidCategory(t *testing.T) {
	uc := &mockUseCase{listErr: event.ErrInvalidCategory}
	r := newTestRouter(uc)

	w := do(t, r, http.MethodGet, "/api/v1/planner/events?category=GARDENING", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateNotFound(t *testing.T) {
	uc := &mockUseCase{updateOut: event.UpdateOutput{Found: false}}
	r := newTestRouter(uc)

	w := do(t, r, http.MethodPatch, "/api/v1/planner/events/missing", `{"title":"x"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteOK(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := do(t, r, http.MethodDelete, "/api/v1/planner/events/e1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestPlanNoConflicts(t *testing.T) {
	uc := &mockUseCase{planErr: event.ErrNoConflicts}
	r := newTestRouter(uc)

	w := do(t, r, http.MethodPost, "/api/v1/planner/conflicts/plan", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestPlanOK(t *testing.T) {
	uc := &mockUseCase{planOut: event.PlanOutput{Resolutions: []model.Resolution{{
		EventID:   "e1",
		IssueType: model.IssueConflict,
		Message:   "Time overlap detected.",
		Action:    model.ActionReschedule,
		NewDate:   "2025-06-21",
	}}}}
	r := newTestRouter(uc)

	w := do(t, r, http.MethodPost, "/api/v1/planner/conflicts/plan", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data planResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data.Resolutions) != 1 || resp.Data.Resolutions[0].NewDate != "2025-06-21" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestApplyResolutionInvalidAction(t *testing.T) {
	uc := &mockUseCase{applyErr: event.ErrInvalidAction}
	r := newTestRouter(uc)

	w := do(t, r, http.MethodPost, "/api/v1/planner/conflicts/e1/apply", `{"action":"SNOOZE"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestApplyResolutionNotConflicting(t *testing.T) {
	uc := &mockUseCase{applyErr: event.ErrNotConflicting}
	r := newTestRouter(uc)

	w := do(t, r, http.MethodPost, "/api/v1/planner/conflicts/e1/apply", `{"action":"RESCHEDULE"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestApplyResolutionDeleted(t *testing.T) {
	uc := &mockUseCase{applyOut: event.ApplyResolutionOutput{Deleted: true}}
	r := newTestRouter(uc)

	w := do(t, r, http.MethodPost, "/api/v1/planner/conflicts/e1/apply", `{"action":"DELETE"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data applyResolutionResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Data.Deleted || resp.Data.Event != nil {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
