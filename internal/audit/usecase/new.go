package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"detection-srv/internal/audit"
	"detection-srv/pkg/kafka"
	"detection-srv/pkg/log"
)

const auditFileName = "audit_log.jsonl"

type implUseCase struct {
	l        log.Logger
	producer kafka.IProducer

	mu   sync.Mutex
	file *os.File
}

var _ audit.UseCase = &implUseCase{}

// New opens the append-only audit file under logDir, creating the directory
// if needed. producer may be nil; events are then written to the file only.
func New(l log.Logger, logDir string, producer kafka.IProducer) (audit.UseCase, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audit dir %s: %w", logDir, err)
	}

	path := filepath.Join(logDir, auditFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log %s: %w", path, err)
	}

	return &implUseCase{
		l:        l,
		producer: producer,
		file:     f,
	}, nil
}
