package http

import (
	"math"

	"detection-srv/internal/analysis"
)

type verdictResp struct {
	Label           string  `json:"label"`
	FakeProbability float64 `json:"fake_probability"`
	RealProbability float64 `json:"real_probability"`
	Confidence      float64 `json:"confidence"`
}

type threatResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

type reasoningResp struct {
	FinalVerdict        string   `json:"final_verdict"`
	RiskLevel           string   `json:"risk_level"`
	ScoreSummary        string   `json:"score_summary"`
	ArtefactExplanation []string `json:"artefact_explanation"`
	OverallExplanation  string   `json:"overall_explanation"`
	Source              string   `json:"source"`
}

type analyzeResp struct {
	ContentHash   string        `json:"content_hash"`
	MediaType     string        `json:"media_type"`
	Model         string        `json:"model"`
	Context       string        `json:"context"`
	Verdict       verdictResp   `json:"verdict"`
	ArtifactHints []string      `json:"artifact_hints"`
	Threats       []threatResp  `json:"threats"`
	Reasoning     reasoningResp `json:"reasoning"`
}

// round4 keeps probabilities readable without hiding the verdict boundary.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func (h *handler) newAnalyzeResp(o analysis.Output) analyzeResp {
	threats := make([]threatResp, 0, len(o.Threats))
	for _, t := range o.Threats {
		threats = append(threats, threatResp{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Impact:      string(t.Impact),
		})
	}

	return analyzeResp{
		ContentHash: o.Asset.ContentHash,
		MediaType:   string(o.Asset.MediaType),
		Model:       h.model,
		Context:     o.Context,
		Verdict: verdictResp{
			Label:           o.Verdict.Label,
			FakeProbability: round4(o.Verdict.FakeProbability),
			RealProbability: round4(o.Verdict.RealProbability),
			Confidence:      round4(o.Verdict.Confidence),
		},
		ArtifactHints: o.ArtifactHints,
		Threats:       threats,
		Reasoning: reasoningResp{
			FinalVerdict:        o.Reasoning.FinalVerdict,
			RiskLevel:           o.Reasoning.RiskLevel,
			ScoreSummary:        o.Reasoning.ScoreSummary,
			ArtefactExplanation: o.Reasoning.ArtefactExplanation,
			OverallExplanation:  o.Reasoning.OverallExplanation,
			Source:              o.Reasoning.Source,
		},
	}
}
