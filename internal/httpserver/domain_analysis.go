package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"detection-srv/internal/analysis"
	analysisHTTP "detection-srv/internal/analysis/delivery/http"
	analysisMinio "detection-srv/internal/analysis/repository/minio"
	analysisRedis "detection-srv/internal/analysis/repository/redis"
	analysisUsecase "detection-srv/internal/analysis/usecase"
	"detection-srv/internal/middleware"
	"detection-srv/internal/threat"
	reasoningUsecase "detection-srv/internal/reasoning/usecase"
)

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, threatUC threat.UseCase) error {
	repo := analysisMinio.New(srv.l, srv.storage)

	var cache analysis.Cache
	if srv.redisClient != nil {
		ttl := time.Duration(srv.config.Redis.VerdictTTL) * time.Second
		cache = analysisRedis.New(srv.l, srv.redisClient, ttl)
	}

	reasoningUC := reasoningUsecase.New(
		srv.l,
		srv.ollamaClient,
		time.Duration(srv.config.Ollama.Timeout)*time.Second,
	)

	uc := analysisUsecase.New(
		srv.l,
		analysisUsecase.Config{
			MaxFileBytes:    srv.config.Media.MaxFileBytes,
			ImageExtensions: srv.config.Media.ImageExtensions,
			VideoExtensions: srv.config.Media.VideoExtensions,
		},
		repo,
		cache,
		srv.visionClient,
		srv.detectorClient,
		threatUC,
		reasoningUC,
		srv.statsUC,
		srv.auditUC,
	)

	handler := analysisHTTP.New(srv.l, uc, srv.config.Detector.Model, srv.discord)
	analysisHTTP.MapAnalysisRoutes(r, handler, mw)

	srv.l.Infof(ctx, "Analysis domain registered")
	return nil
}
