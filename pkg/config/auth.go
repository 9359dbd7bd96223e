package config

import "time"

// AuthConfig controls bearer token verification against the identity
// provider.
type AuthConfig struct {
	// ProviderURL is the identity provider's token verification endpoint.
	// Loaded from AUTH_PROVIDER_URL when set.
	ProviderURL string `yaml:"provider_url"`

	// RequestTimeout bounds each verification call.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultAuthConfig returns the built-in auth defaults.
func DefaultAuthConfig() *AuthConfig {
	return &AuthConfig{
		RequestTimeout: 10 * time.Second,
	}
}
