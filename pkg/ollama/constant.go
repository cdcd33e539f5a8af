package ollama

import "time"

const (
	// DefaultBaseURL is the local Ollama endpoint.
	DefaultBaseURL = "http://localhost:11434"
	// DefaultModel is used when no model is configured.
	DefaultModel = "llama3.1"
	// DefaultTimeout bounds a single chat completion.
	DefaultTimeout = 30 * time.Second
	// MaxTimeout caps misconfigured timeouts so a request can never hang for
	// minutes on the reasoning path.
	MaxTimeout = 120 * time.Second

	// RoleSystem and RoleUser are the chat roles used by this service.
	RoleSystem = "system"
	RoleUser   = "user"
)
