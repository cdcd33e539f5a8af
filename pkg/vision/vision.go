package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"detection-srv/pkg/detector"
)

func (v *visionImpl) PreprocessImage(ctx context.Context, raw []byte) (detector.Tensor, error) {
	url := fmt.Sprintf("%s/v1/preprocess", v.baseURL)

	req := preprocessRequest{Data: base64.StdEncoding.EncodeToString(raw)}
	body, statusCode, err := v.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return detector.Tensor{}, fmt.Errorf("failed to call vision sidecar: %w", err)
	}
	switch statusCode {
	case http.StatusOK:
	case http.StatusUnprocessableEntity:
		return detector.Tensor{}, ErrUndecodable
	default:
		return detector.Tensor{}, fmt.Errorf("vision sidecar returned status: %d, body: %s", statusCode, string(body))
	}

	var resp preprocessResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return detector.Tensor{}, fmt.Errorf("failed to unmarshal tensor: %w", err)
	}
	if len(resp.Tensor.Data) == 0 {
		return detector.Tensor{}, ErrUndecodable
	}
	return resp.Tensor, nil
}

func (v *visionImpl) ProbeVideo(ctx context.Context, sourceURL string) (int, error) {
	url := fmt.Sprintf("%s/v1/video/probe", v.baseURL)

	body, statusCode, err := v.httpClient.Post(ctx, url, probeRequest{URL: sourceURL}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to call vision sidecar: %w", err)
	}
	switch statusCode {
	case http.StatusOK:
	case http.StatusUnprocessableEntity:
		return 0, ErrUndecodable
	default:
		return 0, fmt.Errorf("vision sidecar returned status: %d, body: %s", statusCode, string(body))
	}

	var resp probeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("failed to unmarshal probe result: %w", err)
	}
	return resp.TotalFrames, nil
}

func (v *visionImpl) FrameTensor(ctx context.Context, sourceURL string, index int) (detector.Tensor, error) {
	url := fmt.Sprintf("%s/v1/video/frame", v.baseURL)

	body, statusCode, err := v.httpClient.Post(ctx, url, frameRequest{URL: sourceURL, Index: index}, nil)
	if err != nil {
		return detector.Tensor{}, fmt.Errorf("failed to call vision sidecar: %w", err)
	}
	switch statusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		return detector.Tensor{}, ErrFrameUnavailable
	default:
		return detector.Tensor{}, fmt.Errorf("vision sidecar returned status: %d, body: %s", statusCode, string(body))
	}

	var resp frameResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return detector.Tensor{}, fmt.Errorf("failed to unmarshal frame tensor: %w", err)
	}
	if len(resp.Tensor.Data) == 0 {
		return detector.Tensor{}, ErrFrameUnavailable
	}
	return resp.Tensor, nil
}
