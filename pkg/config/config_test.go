package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 10*time.Minute, cfg.Queue.TaskTimeout)
	assert.Equal(t, 9*time.Minute, cfg.Queue.TaskSoftTimeout)
	assert.Equal(t, 8, cfg.Platform.YouTubeVideoCount)
	assert.Equal(t, 20, cfg.Platform.TwitterTweetCount)
	assert.Equal(t, 30*time.Second, cfg.Platform.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.Enrich.ImageTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Webhook.DuplicateWindow)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultQueueConfig().WorkerCount, cfg.Queue.WorkerCount)
}

func TestLoad_YAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
queue:
  worker_count: 2
  poll_interval: 250ms
platform:
  youtube_video_count: 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, 12, cfg.Platform.YouTubeVideoCount)
	// Untouched values keep defaults
	assert.Equal(t, 10*time.Minute, cfg.Queue.TaskTimeout)
}

func TestLoad_EnvSecrets(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("WEBHOOK_SIGNING_SECRET", "whsec")
	t.Setenv("REASONING_SERVICE_ADDR", "reasoning:9999")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "yt-key", cfg.Platform.YouTubeAPIKey)
	assert.Equal(t, "whsec", cfg.Webhook.SigningSecret)
	assert.Equal(t, "reasoning:9999", cfg.Reasoning.Addr)
}

func TestLoad_InvalidWorkerCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue:\n  worker_count: 0\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker_count")
}

func TestLoad_SoftTimeoutMustBeBelowHard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue:\n  task_soft_timeout: 11m\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task_soft_timeout")
}
