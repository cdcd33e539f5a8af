package vision

import (
	"time"

	"detection-srv/pkg/detector"
	pkghttp "detection-srv/pkg/http"
)

// VisionConfig holds configuration for the vision sidecar client.
type VisionConfig struct {
	BaseURL string
	Timeout time.Duration
}

// visionImpl implements IVision against the sidecar HTTP API.
type visionImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}

// preprocessRequest carries base64-encoded image bytes.
type preprocessRequest struct {
	Data string `json:"data"`
}

// preprocessResponse returns the preprocessed batch tensor.
type preprocessResponse struct {
	Tensor detector.Tensor `json:"tensor"`
}

// probeRequest asks for video metadata by source URL.
type probeRequest struct {
	URL string `json:"url"`
}

// probeResponse reports the frame count; zero when the container does not
// declare one.
type probeResponse struct {
	TotalFrames int `json:"total_frames"`
}

// frameRequest asks for a single preprocessed frame.
type frameRequest struct {
	URL   string `json:"url"`
	Index int    `json:"index"`
}

// frameResponse returns the frame tensor.
type frameResponse struct {
	Tensor detector.Tensor `json:"tensor"`
}
