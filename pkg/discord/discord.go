package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("%s/%s/%s", webhookBaseURL, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.deliver(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = append(embed.Fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.deliver(ctx, WebhookPayload{Username: d.config.DefaultUsername, Embeds: []Embed{embed}})
}

func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.sendEmbed(ctx, title, description, colorWarning)
}

func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.sendEmbed(ctx, title, description, colorInfo)
}

func (d *discordImpl) Close() error { return nil }

func (d *discordImpl) sendEmbed(ctx context.Context, title, description string, color int) error {
	return d.deliver(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       title,
			Description: description,
			Color:       color,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func (d *discordImpl) deliver(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.l.Warnf(ctx, "discord: webhook delivery failed: %v", err)
		return errSendFailed
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		d.l.Warnf(ctx, "discord: webhook returned status %d", resp.StatusCode)
		return errSendFailed
	}
	return nil
}
