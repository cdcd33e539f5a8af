package usecase

import (
	"detection-srv/internal/threat"
	"detection-srv/pkg/log"
)

type implUseCase struct {
	l log.Logger
}

var _ threat.UseCase = &implUseCase{}

func New(l log.Logger) threat.UseCase {
	return &implUseCase{
		l: l,
	}
}
