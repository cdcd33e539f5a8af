package ollama

import (
	"context"
	"fmt"

	pkghttp "detection-srv/pkg/http"
)

// IOllama defines the interface for the Ollama chat API.
// Implementations are safe for concurrent use.
type IOllama interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// NewOllama creates a new Ollama client. Model defaults to DefaultModel and
// the base URL to DefaultBaseURL if empty. The client makes exactly one
// attempt per call; callers own the fallback behavior.
func NewOllama(cfg OllamaConfig) (IOllama, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Timeout > MaxTimeout {
		return nil, fmt.Errorf("ollama: timeout must not exceed %s", MaxTimeout)
	}
	return &ollamaImpl{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: cfg.Timeout,
			Retries: 0,
		}),
	}, nil
}
