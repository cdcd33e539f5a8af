package minio

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

func (s *storageImpl) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.minioClient.ListBuckets(ctx)
	if err != nil {
		s.connected = false
		return handleMinIOError(err, "connect")
	}
	s.connected = true
	return nil
}

func (s *storageImpl) ConnectWithRetry(ctx context.Context, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if err := s.Connect(ctx); err == nil {
			return nil
		} else {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
	}
	return fmt.Errorf("failed to connect after %d retries: %w", maxRetries, lastErr)
}

func (s *storageImpl) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}
	if _, err := s.minioClient.BucketExists(ctx, s.config.Bucket); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

func (s *storageImpl) EnsureBucket(ctx context.Context) error {
	exists, err := s.minioClient.BucketExists(ctx, s.config.Bucket)
	if err != nil {
		return handleMinIOError(err, "check_bucket_exists")
	}
	if exists {
		return nil
	}
	err = s.minioClient.MakeBucket(ctx, s.config.Bucket, minio.MakeBucketOptions{Region: s.config.Region})
	if err != nil {
		return handleMinIOError(err, "create_bucket")
	}
	return nil
}

// SaveMedia streams the reader into the bucket while feeding a SHA-256
// digest, so the content hash costs no second pass over the bytes.
func (s *storageImpl) SaveMedia(ctx context.Context, req *SaveRequest) (*MediaInfo, error) {
	if req == nil || req.ObjectName == "" {
		return nil, NewInvalidInputError("object name is required")
	}
	if req.Reader == nil {
		return nil, NewInvalidInputError("reader is required")
	}

	digest := sha256.New()
	tee := io.TeeReader(req.Reader, digest)

	opts := minio.PutObjectOptions{ContentType: req.ContentType}
	if req.Metadata != nil {
		opts.UserMetadata = req.Metadata
	}

	info, err := s.minioClient.PutObject(ctx, s.config.Bucket, req.ObjectName, tee, req.Size, opts)
	if err != nil {
		return nil, handleMinIOError(err, "save_media")
	}
	return &MediaInfo{
		Bucket:       s.config.Bucket,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		SHA256:       hex.EncodeToString(digest.Sum(nil)),
		ETag:         info.ETag,
		LastModified: time.Now(),
	}, nil
}

func (s *storageImpl) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	if objectName == "" {
		return "", NewInvalidInputError("object name is required")
	}
	url, err := s.minioClient.PresignedGetObject(ctx, s.config.Bucket, objectName, expiry, nil)
	if err != nil {
		return "", handleMinIOError(err, "presigned_get_url")
	}
	return url.String(), nil
}

func (s *storageImpl) DeleteMedia(ctx context.Context, objectName string) error {
	if objectName == "" {
		return NewInvalidInputError("object name is required")
	}
	if err := s.minioClient.RemoveObject(ctx, s.config.Bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return handleMinIOError(err, "delete_media")
	}
	return nil
}

func (s *storageImpl) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	return nil
}
