package usecase

import (
	"fmt"
	"strings"

	"detection-srv/internal/model"
	"detection-srv/internal/reasoning"
)

const (
	fallbackScoreSummary = "Automated reasoning unavailable; verdict derived from detector scores only."
	fallbackExplanation  = "The external reasoning service could not be reached, so this explanation was generated locally from the detector output and the mapped threat categories."
	maxFallbackArtifacts = 3
)

// fallback builds the deterministic local explanation. No randomness, no I/O.
func (uc implUseCase) fallback(input reasoning.ExplainInput) model.ReasoningResult {
	riskLevel := model.RiskLevelMedium
	if input.Verdict.Confidence > 0.75 {
		riskLevel = model.RiskLevelHigh
	}

	artefacts := make([]string, 0, maxFallbackArtifacts)
	for _, t := range input.Threats {
		if len(artefacts) == maxFallbackArtifacts {
			break
		}
		artefacts = append(artefacts, t.Description)
	}

	return model.ReasoningResult{
		FinalVerdict:        strings.ToLower(input.Verdict.Label),
		RiskLevel:           riskLevel,
		ScoreSummary:        fallbackScoreSummary,
		ArtefactExplanation: artefacts,
		OverallExplanation:  fallbackExplanation,
		Source:              model.ReasoningSourceFallback,
	}
}

// defaultArtefacts fills an absent artefact_explanation from the threat list.
func defaultArtefacts(threats []model.ThreatEntry) []string {
	out := make([]string, 0, len(threats))
	for _, t := range threats {
		out = append(out, fmt.Sprintf("%s: %s", t.Name, t.Description))
	}
	return out
}
