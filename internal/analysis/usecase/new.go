package usecase

import (
	"strings"

	"detection-srv/internal/analysis"
	"detection-srv/internal/audit"
	"detection-srv/internal/model"
	"detection-srv/internal/reasoning"
	"detection-srv/internal/stats"
	"detection-srv/internal/threat"
	"detection-srv/pkg/detector"
	"detection-srv/pkg/log"
	"detection-srv/pkg/vision"
)

// Config holds the media validation limits.
type Config struct {
	MaxFileBytes    int64
	ImageExtensions []string
	VideoExtensions []string
}

type implUseCase struct {
	l           log.Logger
	repo        analysis.Repository
	cache       analysis.Cache
	vision      vision.IVision
	detector    detector.IDetector
	threatUC    threat.UseCase
	reasoningUC reasoning.UseCase
	statsUC     stats.UseCase
	auditUC     audit.UseCase

	maxFileBytes int64
	mediaTypes   map[string]model.MediaType
}

var _ analysis.UseCase = &implUseCase{}

// New wires the analysis pipeline. cache may be nil to disable verdict
// caching.
func New(
	l log.Logger,
	cfg Config,
	repo analysis.Repository,
	cache analysis.Cache,
	visionClient vision.IVision,
	detectorClient detector.IDetector,
	threatUC threat.UseCase,
	reasoningUC reasoning.UseCase,
	statsUC stats.UseCase,
	auditUC audit.UseCase,
) analysis.UseCase {
	mediaTypes := make(map[string]model.MediaType, len(cfg.ImageExtensions)+len(cfg.VideoExtensions))
	for _, ext := range cfg.ImageExtensions {
		mediaTypes[strings.ToLower(ext)] = model.MediaTypeImage
	}
	for _, ext := range cfg.VideoExtensions {
		mediaTypes[strings.ToLower(ext)] = model.MediaTypeVideo
	}

	return &implUseCase{
		l:            l,
		repo:         repo,
		cache:        cache,
		vision:       visionClient,
		detector:     detectorClient,
		threatUC:     threatUC,
		reasoningUC:  reasoningUC,
		statsUC:      statsUC,
		auditUC:      auditUC,
		maxFileBytes: cfg.MaxFileBytes,
		mediaTypes:   mediaTypes,
	}
}
