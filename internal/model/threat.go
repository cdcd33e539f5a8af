package model

// Impact grades a threat entry.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// ThreatEntry is one entry of the fixed, process-wide threat taxonomy.
// Static and read-only after start.
type ThreatEntry struct {
	ID          string
	Name        string
	Description string
	Impact      Impact
}
