package minio

import (
	"context"
	"fmt"
	"mime"
	"time"

	"github.com/google/uuid"

	"detection-srv/internal/analysis"
	"detection-srv/internal/model"
	pkgminio "detection-srv/pkg/minio"
)

// Presigned URLs only need to outlive one analysis request.
const presignedURLExpiry = 15 * time.Minute

func (r implRepository) SaveMedia(ctx context.Context, input analysis.SaveMediaInput) (model.MediaAsset, error) {
	objectName := fmt.Sprintf("uploads/%s%s", uuid.NewString(), input.Extension)

	info, err := r.storage.SaveMedia(ctx, &pkgminio.SaveRequest{
		ObjectName:  objectName,
		ContentType: contentTypeFor(input.Extension),
		Reader:      input.Reader,
		Size:        input.Size,
		Metadata: map[string]string{
			"media-type": string(input.MediaType),
		},
	})
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.minio.SaveMedia: %v", err)
		return model.MediaAsset{}, err
	}

	return model.MediaAsset{
		ObjectName:  info.ObjectName,
		Extension:   input.Extension,
		MediaType:   input.MediaType,
		SizeBytes:   info.Size,
		ContentHash: info.SHA256,
	}, nil
}

func (r implRepository) PresignedGetURL(ctx context.Context, objectName string) (string, error) {
	url, err := r.storage.PresignedGetURL(ctx, objectName, presignedURLExpiry)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.minio.PresignedGetURL: %v", err)
		return "", err
	}
	return url, nil
}

func (r implRepository) DeleteMedia(ctx context.Context, objectName string) error {
	if err := r.storage.DeleteMedia(ctx, objectName); err != nil {
		r.l.Errorf(ctx, "analysis.repository.minio.DeleteMedia: %v", err)
		return err
	}
	return nil
}

func contentTypeFor(extension string) string {
	if ct := mime.TypeByExtension(extension); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
