package http

import (
	"github.com/gin-gonic/gin"

	"lifeplanner/pkg/response"
)

// AnalyzeText godoc
// @Summary     Analyze free text
// @Description Extracts an event (or recurrence series) from free text and stores it.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body analyzeTextReq true "Text to analyze"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No event found in input"
// @Failure     502 {object} response.Resp "Extraction backend failed"
// @Router      /api/v1/planner/analyze/text [POST]
func (h *handler) AnalyzeText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AnalyzeText(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeText: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// AnalyzeDocument godoc
// @Summary     Analyze a document or image
// @Description Extracts an event from a base64-encoded document/image payload.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body analyzeDocumentReq true "Base64 payload and MIME type"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No event found in input"
// @Failure     502 {object} response.Resp "Extraction backend failed"
// @Router      /api/v1/planner/analyze/document [POST]
func (h *handler) AnalyzeDocument(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeDocumentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AnalyzeDocument(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeDocument: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// AnalyzeVoice godoc
// @Summary     Analyze a voice note
// @Description Transcribes base64 audio and extracts an event from the transcript.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body analyzeVoiceReq true "Base64 audio and MIME type"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No event found in input"
// @Failure     502 {object} response.Resp "Extraction backend failed"
// @Router      /api/v1/planner/analyze/voice [POST]
func (h *handler) AnalyzeVoice(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeVoiceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AnalyzeVoice(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeVoice: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Create godoc
// @Summary     Create an event manually
// @Description Stores a manually entered event through the normalization pipeline.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List events (display view)
// @Description Returns the filtered, sorted, series-collapsed display view.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       category query string false "Category filter (ALL or a known category)"
// @Param       date     query string false "Selected date (YYYY-MM-DD); shows every instance of that date"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListAll godoc
// @Summary     List all events
// @Description Returns every stored event in storage order (newest first), no filtering.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/planner/events/all [GET]
func (h *handler) ListAll(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAll: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update an event
// @Description Merges a partial edit into one event and re-runs issue detection.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Event ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/events/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}
	if !output.Found {
		response.NotFound(c, errEventNotFound)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an event
// @Description Removes one event and re-runs issue detection. Unknown ids are a no-op.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/planner/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// PlanResolutions godoc
// @Summary     Plan conflict resolutions
// @Description Proposes a next-day reschedule for every conflicting event.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Success     200 {object} planResp
// @Failure     404 {object} response.Resp "No conflicts to resolve"
// @Router      /api/v1/planner/conflicts/plan [POST]
func (h *handler) PlanResolutions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.PlanResolutions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.PlanResolutions: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// ApplyResolution godoc
// @Summary     Apply a conflict resolution
// @Description Applies a DELETE or RESCHEDULE remediation to one event.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id   path string             true "Event ID"
// @Param       body body applyResolutionReq true "Action and optional date override"
// @Success     200 {object} applyResolutionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Event is not conflicting"
// @Router      /api/v1/planner/conflicts/{id}/apply [POST]
func (h *handler) ApplyResolution(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApplyResolutionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ApplyResolution(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ApplyResolution: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newApplyResolutionResp(output))
}
