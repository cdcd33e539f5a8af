package minio

import (
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

// StorageConfig holds configuration for the media store.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// storageImpl implements IStorage over a MinIO (S3-compatible) backend.
type storageImpl struct {
	minioClient *minio.Client
	config      StorageConfig

	mu        sync.RWMutex
	connected bool
}

// MediaInfo describes a persisted object.
type MediaInfo struct {
	Bucket       string
	ObjectName   string
	Size         int64
	ContentType  string
	SHA256       string
	ETag         string
	LastModified time.Time
}
