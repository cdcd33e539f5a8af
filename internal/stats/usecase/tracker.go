package usecase

import (
	"strings"

	"detection-srv/internal/model"
)

func (uc *implUseCase) Record(label string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.total++
	switch strings.ToLower(strings.TrimSpace(label)) {
	case model.LabelFake:
		uc.fakeCount++
	case model.LabelReal:
		uc.realCount++
	}
	ts := uc.now().UTC()
	uc.lastAnalysis = &ts
}

func (uc *implUseCase) Snapshot() model.StatsSnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	snap := model.StatsSnapshot{
		Total:     uc.total,
		FakeCount: uc.fakeCount,
		RealCount: uc.realCount,
	}
	if uc.lastAnalysis != nil {
		ts := *uc.lastAnalysis
		snap.LastAnalysis = &ts
	}
	return snap
}
