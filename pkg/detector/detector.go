package detector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Predict sends the batch to the model server and returns the first output
// vector. The batch always holds a single instance in this service.
func (d *detectorImpl) Predict(ctx context.Context, batch Tensor) ([]float64, error) {
	url := fmt.Sprintf("%s/v1/models/%s:predict", d.baseURL, d.model)

	body, statusCode, err := d.httpClient.Post(ctx, url, predictRequest{Instances: []Tensor{batch}}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call model server: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("model server returned status: %d, body: %s", statusCode, string(body))
	}

	var resp predictResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prediction: %w", err)
	}
	if len(resp.Predictions) == 0 || len(resp.Predictions[0]) == 0 {
		return nil, fmt.Errorf("model server returned no predictions")
	}
	return resp.Predictions[0], nil
}

// checkLoaded verifies the served model is in the AVAILABLE state.
func (d *detectorImpl) checkLoaded(ctx context.Context) error {
	url := fmt.Sprintf("%s/v1/models/%s", d.baseURL, d.model)

	body, statusCode, err := d.httpClient.Get(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("failed to reach model server: %w", err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("model server returned status: %d, body: %s", statusCode, string(body))
	}

	var status modelStatusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return fmt.Errorf("failed to unmarshal model status: %w", err)
	}
	for _, v := range status.ModelVersionStatus {
		if v.State == stateAvailable {
			return nil
		}
	}
	return fmt.Errorf("model %q has no available version", d.model)
}
