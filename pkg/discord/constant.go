package discord

import "time"

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	colorError   = 0xE74C3C
	colorWarning = 0xF39C12
	colorInfo    = 0x3498DB

	// DefaultTimeout bounds a single webhook delivery.
	DefaultTimeout = 10 * time.Second
)

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		DefaultUsername: "detection-srv",
	}
}
