package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Auth - shared API key for the analyze endpoints
	Auth AuthConfig

	// Media - upload validation limits
	Media MediaConfig

	// Detector - model server (inference)
	Detector DetectorConfig

	// Vision - decode/preprocess sidecar
	Vision VisionConfig

	// Ollama - reasoning service
	Ollama OllamaConfig

	// MinIO - upload storage
	MinIO MinIOConfig

	// Redis - verdict cache (optional)
	Redis RedisConfig

	// Kafka - audit event fan-out (optional)
	Kafka KafkaConfig

	// Audit - append-only analysis log
	Audit AuditConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AuthConfig holds the shared API key. An empty key disables the check.
type AuthConfig struct {
	APIKey string
}

// MediaConfig bounds uploads and partitions the extension allow-list.
type MediaConfig struct {
	MaxFileBytes    int64
	ImageExtensions []string
	VideoExtensions []string
}

// DetectorConfig is the configuration for the model server.
type DetectorConfig struct {
	URL     string
	Model   string
	Timeout int // in seconds
}

// VisionConfig is the configuration for the vision sidecar.
type VisionConfig struct {
	URL     string
	Timeout int // in seconds
}

// OllamaConfig is the configuration for the reasoning service.
type OllamaConfig struct {
	URL     string
	Model   string
	Timeout int // in seconds
}

// MinIOConfig is the configuration for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// RedisConfig is the configuration for the verdict cache. Disabled unless
// Enabled is set; the pipeline runs fine without it.
type RedisConfig struct {
	Enabled    bool
	Host       string
	Port       int
	Password   string
	DB         int
	VerdictTTL int // in seconds
}

// KafkaConfig is the configuration for the audit event topic. Empty brokers
// disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// AuditConfig is the configuration for the audit log file.
type AuditConfig struct {
	LogDir string
}

// DiscordConfig is the configuration for the ops webhook (optional).
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("detection-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/detection/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Auth
	cfg.Auth.APIKey = viper.GetString("auth.api_key")

	// Media limits
	cfg.Media.MaxFileBytes = viper.GetInt64("media.max_file_bytes")
	cfg.Media.ImageExtensions = viper.GetStringSlice("media.image_extensions")
	cfg.Media.VideoExtensions = viper.GetStringSlice("media.video_extensions")

	// Detector - model server
	cfg.Detector.URL = viper.GetString("detector.url")
	cfg.Detector.Model = viper.GetString("detector.model")
	cfg.Detector.Timeout = viper.GetInt("detector.timeout")

	// Vision sidecar
	cfg.Vision.URL = viper.GetString("vision.url")
	cfg.Vision.Timeout = viper.GetInt("vision.timeout")

	// Ollama - reasoning service
	cfg.Ollama.URL = viper.GetString("ollama.url")
	cfg.Ollama.Model = viper.GetString("ollama.model")
	cfg.Ollama.Timeout = viper.GetInt("ollama.timeout")

	// MinIO - upload storage
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Redis - verdict cache (optional)
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.VerdictTTL = viper.GetInt("redis.verdict_ttl")

	// Kafka - audit events (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Audit log
	cfg.Audit.LogDir = viper.GetString("audit.log_dir")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Media limits: 50 MB ceiling, extension partition decides media type
	viper.SetDefault("media.max_file_bytes", int64(50*1024*1024))
	viper.SetDefault("media.image_extensions", []string{".jpg", ".jpeg", ".png", ".webp", ".bmp"})
	viper.SetDefault("media.video_extensions", []string{".mp4", ".mov", ".avi", ".mkv", ".webm"})

	// Detector - model server
	viper.SetDefault("detector.url", "http://localhost:8501")
	viper.SetDefault("detector.model", "deepfake")
	viper.SetDefault("detector.timeout", 30)

	// Vision sidecar
	viper.SetDefault("vision.url", "http://localhost:8602")
	viper.SetDefault("vision.timeout", 60)

	// Ollama - reasoning service
	viper.SetDefault("ollama.url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "llama3.1")
	viper.SetDefault("ollama.timeout", 30)

	// MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "detection-media")

	// Redis verdict cache
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.verdict_ttl", 900) // 15 minutes

	// Kafka
	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "detection.audit")

	// Audit log
	viper.SetDefault("audit.log_dir", "./logs")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port == 0 {
		return fmt.Errorf("http_server.port is required")
	}

	if cfg.Media.MaxFileBytes <= 0 {
		return fmt.Errorf("media.max_file_bytes must be greater than 0")
	}
	if len(cfg.Media.ImageExtensions) == 0 && len(cfg.Media.VideoExtensions) == 0 {
		return fmt.Errorf("media extension allow-list must not be empty")
	}

	if cfg.Detector.URL == "" {
		return fmt.Errorf("detector.url is required")
	}
	if cfg.Detector.Model == "" {
		return fmt.Errorf("detector.model is required")
	}

	if cfg.Vision.URL == "" {
		return fmt.Errorf("vision.url is required")
	}

	if cfg.Ollama.URL == "" {
		return fmt.Errorf("ollama.url is required")
	}

	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.AccessKey == "" {
		return fmt.Errorf("minio.access_key is required")
	}
	if cfg.MinIO.SecretKey == "" {
		return fmt.Errorf("minio.secret_key is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required when redis is enabled")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required when redis is enabled")
		}
	}

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when brokers are configured")
	}

	if cfg.Audit.LogDir == "" {
		return fmt.Errorf("audit.log_dir is required")
	}
	return nil
}
