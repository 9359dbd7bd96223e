// Package config loads application configuration: built-in defaults,
// overridden by an optional YAML file, with secrets taken from the
// environment.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root application configuration.
type Config struct {
	Queue     *QueueConfig     `yaml:"queue"`
	Platform  *PlatformConfig  `yaml:"platform"`
	Reasoning *ReasoningConfig `yaml:"reasoning"`
	Enrich    *EnrichConfig    `yaml:"enrich"`
	Webhook   *WebhookConfig   `yaml:"webhook"`
	Auth      *AuthConfig      `yaml:"auth"`
}

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Queue:     DefaultQueueConfig(),
		Platform:  DefaultPlatformConfig(),
		Reasoning: DefaultReasoningConfig(),
		Enrich:    DefaultEnrichConfig(),
		Webhook:   DefaultWebhookConfig(),
		Auth:      DefaultAuthConfig(),
	}
}

// Load builds the configuration. path names an optional YAML override
// file; an empty path or missing file leaves the defaults in place.
// Secrets are always read from the environment last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv pulls secrets and endpoint overrides from the environment.
func (c *Config) applyEnv() {
	c.Platform.YouTubeAPIKey = os.Getenv("YOUTUBE_API_KEY")
	c.Platform.TwitterAPIKey = os.Getenv("TWITTER_API_KEY")
	c.Webhook.SigningSecret = os.Getenv("WEBHOOK_SIGNING_SECRET")

	if addr := os.Getenv("REASONING_SERVICE_ADDR"); addr != "" {
		c.Reasoning.Addr = addr
	}
	if url := os.Getenv("IMAGE_SERVICE_URL"); url != "" {
		c.Enrich.ImageServiceURL = url
	}
	if url := os.Getenv("SEO_SERVICE_URL"); url != "" {
		c.Enrich.SEOServiceURL = url
	}
	if url := os.Getenv("AUTH_PROVIDER_URL"); url != "" {
		c.Auth.ProviderURL = url
	}
}

func (c *Config) validate() error {
	if c.Queue.WorkerCount < 1 {
		return fmt.Errorf("queue.worker_count must be at least 1, got %d", c.Queue.WorkerCount)
	}
	if c.Queue.MaxConcurrentTasks < 1 {
		return fmt.Errorf("queue.max_concurrent_tasks must be at least 1, got %d", c.Queue.MaxConcurrentTasks)
	}
	if c.Queue.TaskSoftTimeout >= c.Queue.TaskTimeout {
		return fmt.Errorf("queue.task_soft_timeout (%v) must be below task_timeout (%v)",
			c.Queue.TaskSoftTimeout, c.Queue.TaskTimeout)
	}
	return nil
}
