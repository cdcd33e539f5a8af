package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"detection-srv/internal/middleware"
	statsHTTP "detection-srv/internal/stats/delivery/http"
)

func (srv *HTTPServer) setupStatsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	handler := statsHTTP.New(srv.l, srv.statsUC, srv.discord)
	statsHTTP.MapStatsRoutes(r, handler, mw)

	srv.l.Infof(ctx, "Stats domain registered")
}
