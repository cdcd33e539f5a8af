package usecase

import (
	"time"

	"detection-srv/internal/reasoning"
	"detection-srv/pkg/log"
	"detection-srv/pkg/ollama"
)

type implUseCase struct {
	l       log.Logger
	client  ollama.IOllama
	timeout time.Duration
}

var _ reasoning.UseCase = &implUseCase{}

func New(l log.Logger, client ollama.IOllama, timeout time.Duration) reasoning.UseCase {
	if timeout <= 0 {
		timeout = ollama.DefaultTimeout
	}
	if timeout > ollama.MaxTimeout {
		timeout = ollama.MaxTimeout
	}
	return &implUseCase{
		l:       l,
		client:  client,
		timeout: timeout,
	}
}
