package analysis

import (
	"context"

	"detection-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// AnalyzeMedia runs the full pipeline over one uploaded image or video.
	AnalyzeMedia(ctx context.Context, input AnalyzeMediaInput) (Output, error)
	// AnalyzeFrames runs the pipeline over a captured frame batch.
	AnalyzeFrames(ctx context.Context, input AnalyzeFramesInput) (Output, error)
}

//go:generate mockery --name Repository
type Repository interface {
	// SaveMedia persists the upload under a random object name and computes
	// its content hash in the same pass over the bytes.
	SaveMedia(ctx context.Context, input SaveMediaInput) (model.MediaAsset, error)
	// PresignedGetURL returns a short-lived read URL for a stored object.
	PresignedGetURL(ctx context.Context, objectName string) (string, error)
	// DeleteMedia removes a stored object. Uploads are temp storage; they do
	// not outlive the request that created them.
	DeleteMedia(ctx context.Context, objectName string) error
}

//go:generate mockery --name Cache
type Cache interface {
	// GetOutput returns a cached analysis output or ErrCacheMiss.
	GetOutput(ctx context.Context, key string) (Output, error)
	// SetOutput caches an analysis output under the configured TTL.
	SetOutput(ctx context.Context, key string, out Output) error
}
