package reasoning

import (
	"detection-srv/internal/model"
)

// ExplainInput carries everything the reasoning layer needs to produce an
// explanation for one verdict.
type ExplainInput struct {
	Verdict       model.Verdict
	MediaType     model.MediaType
	Threats       []model.ThreatEntry
	ArtifactHints []string
	Context       string
}
