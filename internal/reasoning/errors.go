package reasoning

import (
	"errors"
)

// Internal failure reasons of the external call. They select the fallback
// branch and are never returned to callers of Explain.
var (
	ErrServiceUnavailable = errors.New("reasoning service unavailable")
	ErrMalformedPayload   = errors.New("reasoning response is not valid JSON")
	ErrMissingFields      = errors.New("reasoning response misses required fields")
)
