package http

import (
	"github.com/gin-gonic/gin"

	"detection-srv/internal/middleware"
)

func MapStatsRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.GET("", mw.APIKeyAuth(), h.GetStats)
}
