package reasoning

import (
	"context"

	"detection-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Explain produces a structured explanation for a verdict. It never
	// fails: when the external service is unreachable or returns unusable
	// output the deterministic fallback is used and the result is tagged
	// with its source.
	Explain(ctx context.Context, input ExplainInput) model.ReasoningResult
}
