package ollama

import (
	"time"

	pkghttp "detection-srv/pkg/http"
)

// OllamaConfig holds the configuration for the Ollama client.
type OllamaConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// ollamaImpl implements IOllama against the Ollama HTTP API.
type ollamaImpl struct {
	baseURL    string
	model      string
	httpClient pkghttp.IClient
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest defines the request body for the chat endpoint.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// ChatResponse defines the response body from the chat endpoint.
type ChatResponse struct {
	Model     string  `json:"model"`
	Message   Message `json:"message"`
	Done      bool    `json:"done"`
	EvalCount int     `json:"eval_count,omitempty"`
}
