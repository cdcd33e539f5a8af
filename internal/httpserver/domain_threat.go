package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"detection-srv/internal/middleware"
	"detection-srv/internal/threat"
	threatHTTP "detection-srv/internal/threat/delivery/http"
	threatUsecase "detection-srv/internal/threat/usecase"
)

func (srv *HTTPServer) setupThreatDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) (threat.UseCase, error) {
	uc := threatUsecase.New(srv.l)

	handler := threatHTTP.New(srv.l, uc, srv.discord)
	threatHTTP.MapThreatRoutes(r, handler, mw)

	srv.l.Infof(ctx, "Threat domain registered")
	return uc, nil
}
