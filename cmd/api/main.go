package main

import (
	"context"
	"fmt"
	"time"

	"detection-srv/config"
	auditUsecase "detection-srv/internal/audit/usecase"
	"detection-srv/internal/httpserver"
	statsUsecase "detection-srv/internal/stats/usecase"
	"detection-srv/pkg/detector"
	"detection-srv/pkg/discord"
	"detection-srv/pkg/kafka"
	"detection-srv/pkg/log"
	pkgMinio "detection-srv/pkg/minio"
	"detection-srv/pkg/ollama"
	pkgRedis "detection-srv/pkg/redis"
	"detection-srv/pkg/vision"
)

// @title       Deepfake Detection Service API
// @description Media analysis service: fake/real verdicts with threat mapping and reasoning.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared API key for the analysis endpoints.
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 4. Initialize MinIO upload storage
	storage, err := pkgMinio.New(pkgMinio.StorageConfig{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		UseSSL:    cfg.MinIO.UseSSL,
		Region:    cfg.MinIO.Region,
		Bucket:    cfg.MinIO.Bucket,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create storage client: ", err)
		return
	}
	if err := storage.ConnectWithRetry(ctx, 5); err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer storage.Close()
	if err := storage.EnsureBucket(ctx); err != nil {
		logger.Error(ctx, "Failed to ensure media bucket: ", err)
		return
	}
	logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)

	// 5. Initialize Redis verdict cache (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = pkgRedis.NewRedis(pkgRedis.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer redisClient.Close()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	} else {
		logger.Infof(ctx, "Redis verdict cache disabled")
	}

	// 6. Initialize Kafka audit producer (optional)
	var producer kafka.IProducer
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = kafka.NewProducer(kafka.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			logger.Error(ctx, "Failed to connect to Kafka: ", err)
			return
		}
		defer producer.Close()
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		logger.Infof(ctx, "Kafka audit fan-out disabled")
	}

	// 7. Initialize external analysis collaborators
	visionClient, err := vision.NewVision(vision.VisionConfig{
		BaseURL: cfg.Vision.URL,
		Timeout: time.Duration(cfg.Vision.Timeout) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create vision client: ", err)
		return
	}

	// The detector loads lazily: the first analysis request triggers the
	// model-server handshake, concurrent requests block on the same guard.
	detectorClient := detector.NewLazyHTTP(detector.DetectorConfig{
		BaseURL: cfg.Detector.URL,
		Model:   cfg.Detector.Model,
		Timeout: time.Duration(cfg.Detector.Timeout) * time.Second,
	})

	ollamaClient, err := ollama.NewOllama(ollama.OllamaConfig{
		BaseURL: cfg.Ollama.URL,
		Model:   cfg.Ollama.Model,
		Timeout: time.Duration(cfg.Ollama.Timeout) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create ollama client: ", err)
		return
	}

	// 8. Initialize shared usecases
	statsUC := statsUsecase.New(logger)

	auditUC, err := auditUsecase.New(logger, cfg.Audit.LogDir, producer)
	if err != nil {
		logger.Error(ctx, "Failed to open audit log: ", err)
		return
	}
	defer auditUC.Close()

	// 9. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		Storage:        storage,
		RedisClient:    redisClient,
		Producer:       producer,
		VisionClient:   visionClient,
		DetectorClient: detectorClient,
		OllamaClient:   ollamaClient,

		StatsUC: statsUC,
		AuditUC: auditUC,

		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
