package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/creatorloop/looper/pkg/config"
)

// ErrAuthNotConfigured is returned when no provider URL is set.
var ErrAuthNotConfigured = errors.New("auth provider not configured")

// HTTPVerifier validates bearer tokens against the identity provider's
// verification endpoint.
type HTTPVerifier struct {
	cfg        *config.AuthConfig
	httpClient *http.Client
}

// NewHTTPVerifier creates a verifier from auth configuration.
func NewHTTPVerifier(cfg *config.AuthConfig) *HTTPVerifier {
	return &HTTPVerifier{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// verifiedIdentity is the provider's wire shape for a valid token.
type verifiedIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verify forwards the token to the provider and decodes the identity.
// Any non-200 response means the token is invalid or expired.
func (v *HTTPVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	if v.cfg.ProviderURL == "" {
		return Identity{}, ErrAuthNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.cfg.ProviderURL, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("verification request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("token rejected with status %d", resp.StatusCode)
	}

	var body verifiedIdentity
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Identity{}, fmt.Errorf("failed to decode identity: %w", err)
	}
	if body.ID == "" {
		return Identity{}, errors.New("identity response missing id")
	}
	return Identity{ExternalID: body.ID, Email: body.Email}, nil
}
