package usecase

import (
	"strings"

	"detection-srv/internal/model"
)

// Map resolves a verdict label and deployment context to taxonomy entries.
// Base entries come from the label, context keywords may append more, and
// duplicates are dropped while keeping first-seen order.
func (uc implUseCase) Map(label string, context string) []model.ThreatEntry {
	var ids []string
	switch strings.ToLower(strings.TrimSpace(label)) {
	case model.LabelFake:
		ids = []string{ThreatImpersonation, ThreatEvidenceFabrication}
	case model.LabelReal:
		ids = []string{ThreatBenignContent}
	default:
		ids = []string{ThreatNeedsReview}
	}

	ctx := strings.ToLower(context)
	if strings.Contains(ctx, "kyc") || strings.Contains(ctx, "onboarding") {
		ids = append(ids, ThreatKYCBypass)
	}
	if strings.Contains(ctx, "vip") || strings.Contains(ctx, "executive") {
		ids = append(ids, ThreatImpersonation)
	}

	return resolve(ids)
}

// resolve maps ids to taxonomy entries, dropping duplicates and ids without a
// taxonomy entry while keeping first-seen order.
func resolve(ids []string) []model.ThreatEntry {
	seen := make(map[string]struct{}, len(ids))
	out := make([]model.ThreatEntry, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		e, ok := taxonomyByID[id]
		if !ok {
			continue
		}
		out = append(out, e)
	}
	return out
}
