package usecase

import (
	"detection-srv/internal/model"
)

// Taxonomy entry IDs. Closed set, stable across releases.
const (
	ThreatImpersonation       = "impersonation"
	ThreatEvidenceFabrication = "evidence_fabrication"
	ThreatKYCBypass           = "kyc_bypass"
	ThreatBenignContent       = "benign_content"
	ThreatNeedsReview         = "needs_review"
)

var taxonomy = []model.ThreatEntry{
	{
		ID:          ThreatImpersonation,
		Name:        "Identity impersonation",
		Description: "Synthetic media presenting a real person saying or doing something they never did.",
		Impact:      model.ImpactHigh,
	},
	{
		ID:          ThreatEvidenceFabrication,
		Name:        "Evidence fabrication",
		Description: "Manipulated media submitted as proof of an event that did not occur.",
		Impact:      model.ImpactMedium,
	},
	{
		ID:          ThreatKYCBypass,
		Name:        "KYC bypass",
		Description: "Generated or altered media used to defeat identity verification and onboarding checks.",
		Impact:      model.ImpactHigh,
	},
	{
		ID:          ThreatBenignContent,
		Name:        "Benign content",
		Description: "No manipulation detected; the media is consistent with authentic capture.",
		Impact:      model.ImpactLow,
	},
	{
		ID:          ThreatNeedsReview,
		Name:        "Needs manual review",
		Description: "The automated verdict is inconclusive and a human reviewer should inspect the media.",
		Impact:      model.ImpactMedium,
	},
}

var taxonomyByID = func() map[string]model.ThreatEntry {
	m := make(map[string]model.ThreatEntry, len(taxonomy))
	for _, e := range taxonomy {
		m[e.ID] = e
	}
	return m
}()

func (uc implUseCase) Taxonomy() []model.ThreatEntry {
	out := make([]model.ThreatEntry, len(taxonomy))
	copy(out, taxonomy)
	return out
}
