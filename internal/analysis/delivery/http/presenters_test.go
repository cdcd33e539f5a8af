package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detection-srv/internal/analysis"
	"detection-srv/internal/model"
)

func TestNewAnalyzeResp(t *testing.T) {
	h := &handler{model: "deepfake"}

	out := analysis.Output{
		Asset: model.MediaAsset{
			MediaType:   model.MediaTypeImage,
			ContentHash: "abc123",
		},
		Verdict:       model.NewVerdict(0.87654321),
		ArtifactHints: []string{"strong synthetic artifacts"},
		Threats: []model.ThreatEntry{
			{ID: "impersonation", Name: "Impersonation", Description: "desc", Impact: model.ImpactHigh},
		},
		Reasoning: model.ReasoningResult{
			FinalVerdict: model.FinalVerdictLikelyFake,
			RiskLevel:    model.RiskLevelHigh,
			ScoreSummary: "summary",
			Source:       model.ReasoningSourceFallback,
		},
		Context: "kyc onboarding",
	}

	resp := h.newAnalyzeResp(out)

	t.Run("reports the detector model", func(t *testing.T) {
		assert.Equal(t, "deepfake", resp.Model)
	})

	t.Run("echoes the submitted context tag", func(t *testing.T) {
		assert.Equal(t, "kyc onboarding", resp.Context)
	})

	t.Run("probabilities are rounded to four places", func(t *testing.T) {
		assert.Equal(t, 0.8765, resp.Verdict.FakeProbability)
		assert.Equal(t, 0.1235, resp.Verdict.RealProbability)
		assert.Equal(t, 0.8765, resp.Verdict.Confidence)
	})

	t.Run("threat entries carry the full taxonomy shape", func(t *testing.T) {
		require.Len(t, resp.Threats, 1)
		assert.Equal(t, "impersonation", resp.Threats[0].ID)
		assert.Equal(t, string(model.ImpactHigh), resp.Threats[0].Impact)
	})

	t.Run("asset fields survive the mapping", func(t *testing.T) {
		assert.Equal(t, "abc123", resp.ContentHash)
		assert.Equal(t, string(model.MediaTypeImage), resp.MediaType)
	})
}
