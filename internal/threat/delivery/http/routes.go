package http

import (
	"github.com/gin-gonic/gin"

	"detection-srv/internal/middleware"
)

func MapThreatRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.GET("", mw.APIKeyAuth(), h.ListThreats)
}
