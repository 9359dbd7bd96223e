package config

import "time"

// PlatformConfig contains credentials and limits for the platform fetchers.
type PlatformConfig struct {
	// YouTubeAPIKey authenticates against the YouTube Data API.
	// Loaded from YOUTUBE_API_KEY.
	YouTubeAPIKey string `yaml:"-"`

	// YouTubeBaseURL overrides the YouTube API endpoint (tests).
	YouTubeBaseURL string `yaml:"youtube_base_url"`

	// YouTubeVideoCount is the default number of recent videos fetched
	// per competitor channel.
	YouTubeVideoCount int `yaml:"youtube_video_count"`

	// TwitterAPIKey authenticates against the Twitter data provider.
	// Loaded from TWITTER_API_KEY.
	TwitterAPIKey string `yaml:"-"`

	// TwitterBaseURL overrides the Twitter API endpoint (tests).
	TwitterBaseURL string `yaml:"twitter_base_url"`

	// TwitterTweetCount is the default number of tweets fetched per handle.
	TwitterTweetCount int `yaml:"twitter_tweet_count"`

	// RequestTimeout bounds each outbound fetch call.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultPlatformConfig returns the built-in platform fetcher defaults.
func DefaultPlatformConfig() *PlatformConfig {
	return &PlatformConfig{
		YouTubeBaseURL:    "https://www.googleapis.com/youtube/v3",
		YouTubeVideoCount: 8,
		TwitterBaseURL:    "https://api.twitterapi.io",
		TwitterTweetCount: 20,
		RequestTimeout:    30 * time.Second,
	}
}
