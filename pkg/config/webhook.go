package config

import "time"

// WebhookConfig controls identity-provider webhook verification.
type WebhookConfig struct {
	// SigningSecret is the pre-shared HMAC secret.
	// Loaded from WEBHOOK_SIGNING_SECRET.
	SigningSecret string `yaml:"-"`

	// DuplicateWindow is how far back to look for a recent event with the
	// same (external_user_id, event_type) pair.
	DuplicateWindow time.Duration `yaml:"duplicate_window"`
}

// DefaultWebhookConfig returns the built-in webhook defaults.
func DefaultWebhookConfig() *WebhookConfig {
	return &WebhookConfig{
		DuplicateWindow: 5 * time.Minute,
	}
}
