package model

import "time"

// AuditEvent is one append-only analysis record: one JSON object per line in
// the audit log, optionally fanned out to the audit topic.
type AuditEvent struct {
	Timestamp     time.Time `json:"timestamp"`
	FileHash      string    `json:"file_hash"`
	Label         string    `json:"label"`
	Confidence    float64   `json:"confidence"`
	Context       string    `json:"context,omitempty"`
	AttackVectors []string  `json:"attack_vectors"`
}
