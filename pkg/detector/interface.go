package detector

import (
	"context"
	"fmt"

	pkghttp "detection-srv/pkg/http"
)

// IDetector is the detector capability: given a preprocessed tensor batch it
// returns the raw model output vector. The output convention (single
// probability, single logit, or per-class scores) is owned by the model; the
// caller normalizes it. Implementations are safe for concurrent use.
type IDetector interface {
	Predict(ctx context.Context, batch Tensor) ([]float64, error)
}

// NewDetector creates a client for the model server. It does not contact the
// server; wrap it in a Lazy so the first Predict verifies the model is loaded.
func NewDetector(cfg DetectorConfig) (IDetector, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("detector: base URL is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &detectorImpl{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: cfg.Timeout,
			Retries: 0,
		}),
	}, nil
}
