package config

import "time"

// ReasoningConfig locates the out-of-process reasoning sidecar.
type ReasoningConfig struct {
	// Addr is the gRPC address of the reasoning service.
	Addr string `yaml:"addr"`

	// CallTimeout bounds each stage call to the reasoning service.
	CallTimeout time.Duration `yaml:"call_timeout"`
}

// DefaultReasoningConfig returns the built-in reasoning defaults.
func DefaultReasoningConfig() *ReasoningConfig {
	return &ReasoningConfig{
		Addr:        "localhost:50051",
		CallTimeout: 30 * time.Second,
	}
}

// EnrichConfig locates the optional image and SEO enricher services.
type EnrichConfig struct {
	// ImageServiceURL is the image generation endpoint. Empty disables it.
	ImageServiceURL string `yaml:"image_service_url"`

	// ImageTimeout bounds image generation calls; image rendering is the
	// slowest outbound dependency and gets a larger budget.
	ImageTimeout time.Duration `yaml:"image_timeout"`

	// SEOServiceURL is the SEO rewrite endpoint. Empty disables it.
	SEOServiceURL string `yaml:"seo_service_url"`

	// SEOTimeout bounds SEO rewrite calls.
	SEOTimeout time.Duration `yaml:"seo_timeout"`
}

// DefaultEnrichConfig returns the built-in enricher defaults.
func DefaultEnrichConfig() *EnrichConfig {
	return &EnrichConfig{
		ImageTimeout: 60 * time.Second,
		SEOTimeout:   30 * time.Second,
	}
}
