package minio

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// IStorage is the write-once media store. Objects are keyed by a random
// identifier plus the original extension; the SHA-256 of the byte stream is
// computed while writing so hashing and persistence are one pass.
// Implementations are safe for concurrent use.
type IStorage interface {
	Connect(ctx context.Context) error
	ConnectWithRetry(ctx context.Context, maxRetries int) error
	HealthCheck(ctx context.Context) error
	EnsureBucket(ctx context.Context) error
	SaveMedia(ctx context.Context, req *SaveRequest) (*MediaInfo, error)
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	DeleteMedia(ctx context.Context, objectName string) error
	Close() error
}

// SaveRequest describes a single upload.
type SaveRequest struct {
	ObjectName  string
	ContentType string
	Reader      io.Reader
	Size        int64 // -1 when unknown; streamed in parts
	Metadata    map[string]string
}

// New creates a new storage client. Returns the interface.
func New(cfg StorageConfig) (IStorage, error) {
	if cfg.Endpoint == "" {
		return nil, NewInvalidInputError("endpoint is required")
	}
	if cfg.Bucket == "" {
		return nil, NewInvalidInputError("bucket is required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, handleMinIOError(err, "new_client")
	}
	return &storageImpl{
		minioClient: client,
		config:      cfg,
	}, nil
}
