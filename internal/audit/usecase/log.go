package usecase

import (
	"context"
	"encoding/json"

	"detection-srv/internal/model"
)

// Log serializes the event as one JSON line and appends it under the lock.
// The Kafka fan-out is best effort; a broker failure never fails the audit
// as long as the file write succeeded.
func (uc *implUseCase) Log(ctx context.Context, event model.AuditEvent) error {
	if event.AttackVectors == nil {
		event.AttackVectors = []string{}
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	_, err = uc.file.Write(append(payload, '\n'))
	uc.mu.Unlock()
	if err != nil {
		return err
	}

	if uc.producer != nil {
		if pubErr := uc.producer.Publish([]byte(event.FileHash), payload); pubErr != nil {
			uc.l.Warnf(ctx, "audit.Log: kafka publish failed: %v", pubErr)
		}
	}
	return nil
}

func (uc *implUseCase) Close() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.file.Close()
}
