package detector

import "time"

const (
	// DefaultModel is the served model name.
	DefaultModel = "deepfake"
	// DefaultTimeout bounds a single predict call.
	DefaultTimeout = 30 * time.Second

	// stateAvailable is the model-server state for a servable model.
	stateAvailable = "AVAILABLE"
)
