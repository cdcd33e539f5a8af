package detector

import (
	"time"

	pkghttp "detection-srv/pkg/http"
)

// Tensor is a flattened row-major tensor with an explicit shape. A batch of
// one preprocessed frame has shape [1, H, W, 3].
type Tensor struct {
	Shape []int     `json:"shape"`
	Data  []float32 `json:"data"`
}

// DetectorConfig holds configuration for the model-server client.
type DetectorConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// detectorImpl implements IDetector against the model server HTTP API.
type detectorImpl struct {
	baseURL    string
	model      string
	httpClient pkghttp.IClient
}

// predictRequest is the model-server predict payload.
type predictRequest struct {
	Instances []Tensor `json:"instances"`
}

// predictResponse is the model-server predict result: one output vector per
// instance.
type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
}

// modelStatusResponse is the model metadata/status document.
type modelStatusResponse struct {
	ModelVersionStatus []struct {
		Version string `json:"version"`
		State   string `json:"state"`
	} `json:"model_version_status"`
}
