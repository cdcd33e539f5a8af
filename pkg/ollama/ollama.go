package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Chat sends the messages to the chat endpoint and returns the assistant
// message content. Streaming is always disabled; the caller gets the full
// completion or an error.
func (o *ollamaImpl) Chat(ctx context.Context, messages []Message) (string, error) {
	url := fmt.Sprintf("%s/api/chat", o.baseURL)

	req := ChatRequest{
		Model:    o.model,
		Messages: messages,
		Stream:   false,
	}

	body, statusCode, err := o.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return "", fmt.Errorf("failed to call Ollama API: %w", err)
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("Ollama API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp ChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal Ollama response: %w", err)
	}
	if resp.Message.Content == "" {
		return "", fmt.Errorf("no content generated")
	}
	return resp.Message.Content, nil
}
