package vision

import (
	"context"
	"fmt"

	"detection-srv/pkg/detector"
	pkghttp "detection-srv/pkg/http"
)

// IVision is the decode/preprocess collaborator: it turns raw media into
// model-ready tensors. Decoding and resize-normalize run in the vision
// sidecar; this client only moves bytes. Implementations are safe for
// concurrent use.
type IVision interface {
	// PreprocessImage decodes raw image bytes and returns the preprocessed
	// batch tensor of shape [1, H, W, 3].
	PreprocessImage(ctx context.Context, raw []byte) (detector.Tensor, error)
	// ProbeVideo returns the reported total frame count for the video at
	// sourceURL. Zero means the count is unknown.
	ProbeVideo(ctx context.Context, sourceURL string) (int, error)
	// FrameTensor decodes and preprocesses the frame at the given index.
	// Returns ErrFrameUnavailable once the index is past the end of stream.
	FrameTensor(ctx context.Context, sourceURL string, index int) (detector.Tensor, error)
}

// NewVision creates a client for the vision sidecar.
func NewVision(cfg VisionConfig) (IVision, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("vision: base URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &visionImpl{
		baseURL: cfg.BaseURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: cfg.Timeout,
			Retries: 0,
		}),
	}, nil
}
