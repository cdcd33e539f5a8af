package usecase

import (
	"sync"
	"time"

	"detection-srv/internal/stats"
	"detection-srv/pkg/log"
)

type implUseCase struct {
	l log.Logger

	mu           sync.Mutex
	total        int64
	fakeCount    int64
	realCount    int64
	lastAnalysis *time.Time
	now          func() time.Time
}

var _ stats.UseCase = &implUseCase{}

func New(l log.Logger) stats.UseCase {
	return &implUseCase{
		l:   l,
		now: time.Now,
	}
}
