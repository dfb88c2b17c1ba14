package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	errMissingID     = errors.New("id is required")
	errEventNotFound = errors.New("event not found")
)

// processAnalyzeTextReq binds and validates the free-text analyze body.
func (h *handler) processAnalyzeTextReq(c *gin.Context) (analyzeTextReq, error) {
	var req analyzeTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAnalyzeDocumentReq binds and validates the document analyze body.
func (h *handler) processAnalyzeDocumentReq(c *gin.Context) (analyzeDocumentReq, error) {
	var req analyzeDocumentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAnalyzeVoiceReq binds and validates the voice analyze body.
func (h *handler) processAnalyzeVoiceReq(c *gin.Context) (analyzeVoiceReq, error) {
	var req analyzeVoiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateReq binds and validates the manual create body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the partial update body plus the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processApplyResolutionReq binds the apply body plus the URI param.
func (h *handler) processApplyResolutionReq(c *gin.Context) (applyResolutionReq, error) {
	var req applyResolutionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}
