// Package enrich calls the optional image-generation and SEO-rewrite
// services from the Content stage. Both enrichers are best-effort:
// failures degrade the content, never the workflow.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/creatorloop/looper/pkg/config"
)

// scriptExcerptLimit is how much of the script accompanies the title in
// an image prompt.
const scriptExcerptLimit = 200

// ImageClient generates thumbnail images for daily content.
type ImageClient struct {
	url        string
	httpClient *http.Client
}

// NewImageClient creates an image enricher. Returns nil when the service
// URL is not configured, which callers treat as disabled.
func NewImageClient(cfg *config.EnrichConfig) *ImageClient {
	if cfg.ImageServiceURL == "" {
		return nil
	}
	return &ImageClient{
		url:        cfg.ImageServiceURL,
		httpClient: &http.Client{Timeout: cfg.ImageTimeout},
	}
}

// GenerateThumbnail requests a thumbnail for a title plus the opening of
// the script, returning the image URL.
func (c *ImageClient) GenerateThumbnail(ctx context.Context, title, script string) (string, error) {
	excerpt := script
	if len(excerpt) > scriptExcerptLimit {
		excerpt = excerpt[:scriptExcerptLimit]
	}

	var resp struct {
		URL string `json:"url"`
	}
	err := postJSON(ctx, c.httpClient, c.url, map[string]string{
		"title":   title,
		"excerpt": excerpt,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	return resp.URL, nil
}

// SEOClient rewrites titles and tags for discoverability.
type SEOClient struct {
	url        string
	httpClient *http.Client
}

// NewSEOClient creates an SEO enricher. Returns nil when the service URL
// is not configured, which callers treat as disabled.
func NewSEOClient(cfg *config.EnrichConfig) *SEOClient {
	if cfg.SEOServiceURL == "" {
		return nil
	}
	return &SEOClient{
		url:        cfg.SEOServiceURL,
		httpClient: &http.Client{Timeout: cfg.SEOTimeout},
	}
}

// SEOResult is the optimized title and tag set.
type SEOResult struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// Optimize rewrites the title and tags for a piece of daily content.
func (c *SEOClient) Optimize(ctx context.Context, title string, tags []string) (*SEOResult, error) {
	var resp SEOResult
	err := postJSON(ctx, c.httpClient, c.url, map[string]interface{}{
		"title": title,
		"tags":  tags,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("seo optimization failed: %w", err)
	}
	return &resp, nil
}

func postJSON(ctx context.Context, client *http.Client, url string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
