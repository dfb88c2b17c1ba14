package http

import (
	"lifeplanner/internal/event"
	"lifeplanner/internal/model"
	"lifeplanner/pkg/gemini"
)

// --- Request DTOs ---

type analyzeTextReq struct {
	Text string `json:"text" binding:"required"`
}

func (r analyzeTextReq) toInput() event.AnalyzeTextInput {
	return event.AnalyzeTextInput{Text: r.Text}
}

type analyzeDocumentReq struct {
	Data     string `json:"data"      binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
}

func (r analyzeDocumentReq) toInput() event.AnalyzeDocumentInput {
	return event.AnalyzeDocumentInput{
		DataBase64: r.Data,
		MimeType:   r.MimeType,
	}
}

type analyzeVoiceReq struct {
	Audio    string `json:"audio"     binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
}

func (r analyzeVoiceReq) toInput() event.AnalyzeVoiceInput {
	return event.AnalyzeVoiceInput{
		AudioBase64: r.Audio,
		MimeType:    r.MimeType,
	}
}

// ---

type recurrenceReq struct {
	Frequency string `json:"frequency" binding:"required"`
	Interval  int    `json:"interval"`
	Until     string `json:"until"`
	Count     int    `json:"count"`
}

type createReq struct {
	Title          string         `json:"title" binding:"required,max=255"`
	Description    string         `json:"description" binding:"max=2000"`
	Date           string         `json:"date"`
	StartTime      string         `json:"start_time"`
	EndTime        string         `json:"end_time"`
	Category       string         `json:"category"`
	Amount         string         `json:"amount"`
	Currency       string         `json:"currency"`
	IsRenewal      bool           `json:"is_renewal"`
	ExpirationDate string         `json:"expiration_date"`
	Recurrence     *recurrenceReq `json:"recurrence"`
}

func (r createReq) toInput() event.CreateInput {
	cand := gemini.Candidate{
		IsEvent:        true,
		IsRenewal:      r.IsRenewal,
		Title:          r.Title,
		Date:           r.Date,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		ExpirationDate: r.ExpirationDate,
		Amount:         r.Amount,
		Currency:       r.Currency,
		Description:    r.Description,
		Category:       r.Category,
	}
	if r.Recurrence != nil {
		cand.Recurrence = &gemini.CandidateRecurrence{
			Frequency: r.Recurrence.Frequency,
			Interval:  r.Recurrence.Interval,
			Until:     r.Recurrence.Until,
			Count:     r.Recurrence.Count,
		}
	}
	return event.CreateInput{Candidate: cand}
}

// ---

type listReq struct {
	Category string `form:"category"`
	Date     string `form:"date"`
}

func (r listReq) toInput() event.ListInput {
	return event.ListInput{
		Category: r.Category,
		Date:     r.Date,
	}
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Category    *string `json:"category"`
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Amount      *string `json:"amount"`
	Currency    *string `json:"currency"`
}

func (r updateReq) toInput() event.UpdateInput {
	return event.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Amount:      r.Amount,
		Currency:    r.Currency,
	}
}

// ---

type applyResolutionReq struct {
	ID     string `json:"-"` // populated from URI param
	Action string `json:"action" binding:"required"`
	Date   string `json:"date"`
}

func (r applyResolutionReq) toInput() event.ApplyResolutionInput {
	return event.ApplyResolutionInput{
		EventID:      r.ID,
		Action:       r.Action,
		DateOverride: r.Date,
	}
}

// --- Response DTOs ---

type recurrenceResp struct {
	Frequency string `json:"frequency"`
	Interval  int    `json:"interval,omitempty"`
	Until     string `json:"until,omitempty"`
	Count     int    `json:"count,omitempty"`
}

type eventResp struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Date         string          `json:"date,omitempty"`
	StartTime    string          `json:"start_time,omitempty"`
	EndTime      string          `json:"end_time,omitempty"`
	Category     string          `json:"category"`
	Amount       string          `json:"amount,omitempty"`
	Currency     string          `json:"currency,omitempty"`
	SourceType   string          `json:"source_type,omitempty"`
	IsRenewal    bool            `json:"is_renewal,omitempty"`
	ExpiryDate   string          `json:"expiry_date,omitempty"`
	Recurrence   *recurrenceResp `json:"recurrence,omitempty"`
	GroupID      string          `json:"group_id,omitempty"`
	SeriesIndex  int             `json:"series_index,omitempty"`
	SeriesTotal  int             `json:"series_total,omitempty"`
	IsConflict   bool            `json:"is_conflict"`
	IsPast       bool            `json:"is_past"`
	AISuggestion string          `json:"ai_suggestion,omitempty"`
}

func newEventResp(ev model.Event) eventResp {
	resp := eventResp{
		ID:           ev.ID,
		Title:        ev.Title,
		Description:  ev.Description,
		Date:         ev.Date,
		StartTime:    ev.StartTime,
		EndTime:      ev.EndTime,
		Category:     string(ev.Category),
		Amount:       ev.Amount,
		Currency:     ev.Currency,
		SourceType:   string(ev.SourceType),
		IsRenewal:    ev.IsRenewal,
		ExpiryDate:   ev.ExpiryDate,
		GroupID:      ev.GroupID,
		SeriesIndex:  ev.SeriesIndex,
		SeriesTotal:  ev.SeriesTotal,
		IsConflict:   ev.IsConflict,
		IsPast:       ev.IsPast,
		AISuggestion: ev.AISuggestion,
	}
	if ev.Recurrence != nil {
		resp.Recurrence = &recurrenceResp{
			Frequency: string(ev.Recurrence.Frequency),
			Interval:  ev.Recurrence.Interval,
			Until:     ev.Recurrence.Until,
			Count:     ev.Recurrence.Count,
		}
	}
	return resp
}

func newEventResps(events []model.Event) []eventResp {
	out := make([]eventResp, len(events))
	for i, ev := range events {
		out[i] = newEventResp(ev)
	}
	return out
}

type analyzeResp struct {
	Events     []eventResp `json:"events"`
	Transcript string      `json:"transcript,omitempty"`
}

func (h *handler) newAnalyzeResp(out event.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Events:     newEventResps(out.Events),
		Transcript: out.Transcript,
	}
}

type createResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newCreateResp(out event.CreateOutput) createResp {
	return createResp{Events: newEventResps(out.Events)}
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	return listResp{
		Events: newEventResps(out.Events),
		Total:  len(out.Events),
	}
}

type updateResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newUpdateResp(out event.UpdateOutput) updateResp {
	return updateResp{Event: newEventResp(out.Event)}
}

type resolutionResp struct {
	EventID      string `json:"event_id"`
	IssueType    string `json:"issue_type"`
	Message      string `json:"message"`
	Action       string `json:"action"`
	NewDate      string `json:"new_date,omitempty"`
	NewStartTime string `json:"new_start_time,omitempty"`
	NewEndTime   string `json:"new_end_time,omitempty"`
}

type planResp struct {
	Resolutions []resolutionResp `json:"resolutions"`
}

func (h *handler) newPlanResp(out event.PlanOutput) planResp {
	resolutions := make([]resolutionResp, len(out.Resolutions))
	for i, res := range out.Resolutions {
		resolutions[i] = resolutionResp{
			EventID:      res.EventID,
			IssueType:    res.IssueType,
			Message:      res.Message,
			Action:       res.Action,
			NewDate:      res.NewDate,
			NewStartTime: res.NewStartTime,
			NewEndTime:   res.NewEndTime,
		}
	}
	return planResp{Resolutions: resolutions}
}

type applyResolutionResp struct {
	Deleted bool       `json:"deleted"`
	Event   *eventResp `json:"event,omitempty"`
}

func (h *handler) newApplyResolutionResp(out event.ApplyResolutionOutput) applyResolutionResp {
	resp := applyResolutionResp{Deleted: out.Deleted}
	if out.Event.ID != "" {
		ev := newEventResp(out.Event)
		resp.Event = &ev
	}
	return resp
}
