package model

import "time"

// StatsSnapshot is a point-in-time read of the process-wide counters.
type StatsSnapshot struct {
	Total        int64
	FakeCount    int64
	RealCount    int64
	LastAnalysis *time.Time
}
