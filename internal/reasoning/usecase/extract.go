package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"detection-srv/internal/reasoning"
)

type reasoningPayload struct {
	FinalVerdict        string   `json:"final_verdict"`
	RiskLevel           string   `json:"risk_level"`
	ScoreSummary        string   `json:"score_summary"`
	ArtefactExplanation []string `json:"artefact_explanation"`
	OverallExplanation  string   `json:"overall_explanation"`
}

// extractJSONObject returns the first balanced {...} substring of content.
// The reasoning model is asked for bare JSON but regularly wraps it in prose.
func extractJSONObject(content string) (string, error) {
	start := strings.IndexByte(content, '{')
	if start < 0 {
		return "", reasoning.ErrMalformedPayload
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		ch := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[start : i+1], nil
			}
		}
	}
	return "", reasoning.ErrMalformedPayload
}

// parsePayload extracts, decodes and validates the structured explanation
// embedded in the model's reply.
func parsePayload(content string) (reasoningPayload, error) {
	raw, err := extractJSONObject(content)
	if err != nil {
		return reasoningPayload{}, err
	}

	var payload reasoningPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return reasoningPayload{}, fmt.Errorf("%w: %v", reasoning.ErrMalformedPayload, err)
	}

	if payload.FinalVerdict == "" || payload.RiskLevel == "" || payload.ScoreSummary == "" {
		return reasoningPayload{}, reasoning.ErrMissingFields
	}
	return payload, nil
}
