package usecase

import (
	"context"
	"fmt"

	"detection-srv/internal/model"
	"detection-srv/internal/reasoning"
)

// Explain makes exactly one attempt against the reasoning service, bounded by
// the configured timeout, and returns the fallback on any failure. It never
// returns an error.
func (uc implUseCase) Explain(ctx context.Context, input reasoning.ExplainInput) model.ReasoningResult {
	result, err := uc.explainExternal(ctx, input)
	if err != nil {
		uc.l.Warnf(ctx, "reasoning.Explain: using fallback: %v", err)
		return uc.fallback(input)
	}
	return result
}

func (uc implUseCase) explainExternal(ctx context.Context, input reasoning.ExplainInput) (model.ReasoningResult, error) {
	messages, err := uc.buildMessages(input)
	if err != nil {
		return model.ReasoningResult{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	content, err := uc.client.Chat(callCtx, messages)
	if err != nil {
		return model.ReasoningResult{}, fmt.Errorf("%w: %v", reasoning.ErrServiceUnavailable, err)
	}

	payload, err := parsePayload(content)
	if err != nil {
		return model.ReasoningResult{}, err
	}

	artefacts := payload.ArtefactExplanation
	if len(artefacts) == 0 {
		artefacts = defaultArtefacts(input.Threats)
	}
	overall := payload.OverallExplanation
	if overall == "" {
		overall = fallbackExplanation
	}

	return model.ReasoningResult{
		FinalVerdict:        payload.FinalVerdict,
		RiskLevel:           payload.RiskLevel,
		ScoreSummary:        payload.ScoreSummary,
		ArtefactExplanation: artefacts,
		OverallExplanation:  overall,
		Source:              model.ReasoningSourceExternal,
		RawResponse:         content,
	}, nil
}
