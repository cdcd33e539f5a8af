package stats

import (
	"detection-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Record counts one finished analysis under its verdict label.
	Record(label string)
	// Snapshot returns a consistent copy of the counters.
	Snapshot() model.StatsSnapshot
}
