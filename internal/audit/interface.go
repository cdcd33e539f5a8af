package audit

import (
	"context"

	"detection-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Log appends one analysis record to the audit trail. Failures must be
	// reported, never swallowed; callers decide whether they are fatal.
	Log(ctx context.Context, event model.AuditEvent) error
	// Close flushes and releases the underlying sinks.
	Close() error
}
