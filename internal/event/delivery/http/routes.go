package http

import (
	"github.com/gin-gonic/gin"

	"lifeplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The analyze routes are rate limited: each request costs an LLM call.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	analyze := rg.Group("/analyze")
	{
		analyze.POST("/text", mw.RateLimit(), h.AnalyzeText)
		analyze.POST("/document", mw.RateLimit(), h.AnalyzeDocument)
		analyze.POST("/voice", mw.RateLimit(), h.AnalyzeVoice)
	}

	events := rg.Group("/events")
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/all", h.ListAll)
		events.PATCH("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}

	conflicts := rg.Group("/conflicts")
	{
		conflicts.POST("/plan", h.PlanResolutions)
		conflicts.POST("/:id/apply", h.ApplyResolution)
	}
}
