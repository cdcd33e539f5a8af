package http

import (
	"github.com/gin-gonic/gin"

	"detection-srv/internal/middleware"
)

func MapAnalysisRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.POST("", mw.APIKeyAuth(), h.AnalyzeMedia)
	r.POST("/frames", mw.APIKeyAuth(), h.AnalyzeFrames)
}
