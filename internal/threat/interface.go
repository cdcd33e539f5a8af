package threat

import (
	"detection-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Taxonomy returns every entry of the threat catalogue.
	Taxonomy() []model.ThreatEntry
	// Map resolves the attack vectors implied by a verdict label within a
	// deployment context. Pure and deterministic.
	Map(label string, context string) []model.ThreatEntry
}
