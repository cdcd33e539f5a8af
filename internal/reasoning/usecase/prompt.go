package usecase

import (
	"encoding/json"
	"fmt"

	"detection-srv/internal/reasoning"
	"detection-srv/pkg/ollama"
)

const systemPrompt = `You are a security analyst specialized in deepfake and synthetic media abuse.
You receive the output of an automated detector and must explain its security implications.
Respond with a single JSON object and nothing else, with exactly these fields:
{"final_verdict": "likely_fake" | "likely_real" | "uncertain", "risk_level": "low" | "medium" | "high", "score_summary": string, "artefact_explanation": [string], "overall_explanation": string}`

type promptEvidence struct {
	Label           string   `json:"label"`
	FakeProbability float64  `json:"fake_probability"`
	RealProbability float64  `json:"real_probability"`
	Confidence      float64  `json:"confidence"`
	MediaType       string   `json:"media_type"`
	Context         string   `json:"context,omitempty"`
	ArtifactHints   []string `json:"artifact_hints"`
	Threats         []string `json:"threats"`
}

// buildMessages serializes the evidence as a JSON block inside the user
// message. No free text from the request reaches the prompt outside that
// block.
func (uc implUseCase) buildMessages(input reasoning.ExplainInput) ([]ollama.Message, error) {
	threats := make([]string, 0, len(input.Threats))
	for _, t := range input.Threats {
		threats = append(threats, fmt.Sprintf("%s (%s impact): %s", t.Name, t.Impact, t.Description))
	}

	evidence := promptEvidence{
		Label:           input.Verdict.Label,
		FakeProbability: input.Verdict.FakeProbability,
		RealProbability: input.Verdict.RealProbability,
		Confidence:      input.Verdict.Confidence,
		MediaType:       string(input.MediaType),
		Context:         input.Context,
		ArtifactHints:   input.ArtifactHints,
		Threats:         threats,
	}
	block, err := json.Marshal(evidence)
	if err != nil {
		return nil, err
	}

	return []ollama.Message{
		{Role: ollama.RoleSystem, Content: systemPrompt},
		{Role: ollama.RoleUser, Content: "Detector output:\n" + string(block)},
	}, nil
}
