package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"detection-srv/config"
	"detection-srv/internal/audit"
	"detection-srv/internal/stats"
	"detection-srv/pkg/detector"
	"detection-srv/pkg/discord"
	"detection-srv/pkg/kafka"
	"detection-srv/pkg/log"
	"detection-srv/pkg/minio"
	"detection-srv/pkg/ollama"
	"detection-srv/pkg/redis"
	"detection-srv/pkg/vision"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// External collaborators
	storage        minio.IStorage
	redisClient    redis.IRedis
	producer       kafka.IProducer
	visionClient   vision.IVision
	detectorClient detector.IDetector
	ollamaClient   ollama.IOllama

	// Shared usecases
	statsUC stats.UseCase
	auditUC audit.UseCase

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	Storage        minio.IStorage
	RedisClient    redis.IRedis
	Producer       kafka.IProducer
	VisionClient   vision.IVision
	DetectorClient detector.IDetector
	OllamaClient   ollama.IOllama

	StatsUC stats.UseCase
	AuditUC audit.UseCase

	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		storage:        cfg.Storage,
		redisClient:    cfg.RedisClient,
		producer:       cfg.Producer,
		visionClient:   cfg.VisionClient,
		detectorClient: cfg.DetectorClient,
		ollamaClient:   cfg.OllamaClient,

		statsUC: cfg.StatsUC,
		auditUC: cfg.AuditUC,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

// validate validates that all required dependencies are provided. Redis,
// Kafka and Discord are optional; everything else is not.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.storage == nil {
		return errors.New("storage is required")
	}
	if srv.visionClient == nil {
		return errors.New("vision client is required")
	}
	if srv.detectorClient == nil {
		return errors.New("detector client is required")
	}
	if srv.ollamaClient == nil {
		return errors.New("ollama client is required")
	}
	if srv.statsUC == nil {
		return errors.New("stats usecase is required")
	}
	if srv.auditUC == nil {
		return errors.New("audit usecase is required")
	}
	return nil
}
