// Package platform fetches normalized competitor content from external
// platform APIs. Fetchers never page beyond their caps and normalize
// missing statistics to safe defaults.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/creatorloop/looper/pkg/config"
	"github.com/creatorloop/looper/pkg/models"
)

// Maximum IDs per YouTube videos.list call.
const youtubeBatchSize = 50

const descriptionLimit = 800

var (
	channelIDPattern = regexp.MustCompile(`/channel/(UC[\w-]+)`)
	handlePattern    = regexp.MustCompile(`/@([\w.-]+)`)
	customPattern    = regexp.MustCompile(`/(?:c|user)/([\w.-]+)`)
)

// YouTubeClient fetches recent videos for a channel via the YouTube Data API.
type YouTubeClient struct {
	cfg        *config.PlatformConfig
	httpClient *http.Client
}

// NewYouTubeClient creates a YouTube fetcher from platform configuration.
func NewYouTubeClient(cfg *config.PlatformConfig) *YouTubeClient {
	return &YouTubeClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// FetchRecentVideos resolves the channel URL and returns its last n videos
// as normalized records. n defaults to the configured count and is capped
// at one API page (50).
func (c *YouTubeClient) FetchRecentVideos(ctx context.Context, channelURL string, n int) ([]models.Video, error) {
	if n <= 0 {
		n = c.cfg.YouTubeVideoCount
	}
	if n > youtubeBatchSize {
		n = youtubeBatchSize
	}

	channelID, err := c.ResolveChannelID(ctx, channelURL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve channel for %s: %w", channelURL, err)
	}

	ids, err := c.searchVideoIDs(ctx, channelID, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos for channel %s: %w", channelID, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	videos := make([]models.Video, 0, len(ids))
	for start := 0; start < len(ids); start += youtubeBatchSize {
		end := start + youtubeBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch, err := c.fetchVideoDetails(ctx, ids[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to fetch video details: %w", err)
		}
		videos = append(videos, batch...)
	}
	return videos, nil
}

// ResolveChannelID turns a channel URL into a channel ID.
// /channel/UC... URLs resolve locally; /@handle, /c/name and /user/name
// go through the search endpoint.
func (c *YouTubeClient) ResolveChannelID(ctx context.Context, channelURL string) (string, error) {
	if m := channelIDPattern.FindStringSubmatch(channelURL); m != nil {
		return m[1], nil
	}

	var query string
	if m := handlePattern.FindStringSubmatch(channelURL); m != nil {
		query = m[1]
	} else if m := customPattern.FindStringSubmatch(channelURL); m != nil {
		query = m[1]
	} else {
		return "", fmt.Errorf("unrecognized channel URL format: %s", channelURL)
	}

	params := url.Values{
		"part":       {"snippet"},
		"type":       {"channel"},
		"q":          {query},
		"maxResults": {"1"},
		"key":        {c.cfg.YouTubeAPIKey},
	}

	var result struct {
		Items []struct {
			ID struct {
				ChannelID string `json:"channelId"`
			} `json:"id"`
		} `json:"items"`
	}
	if err := c.getJSON(ctx, "/search", params, &result); err != nil {
		return "", err
	}
	if len(result.Items) == 0 {
		return "", fmt.Errorf("no channel found for %q", query)
	}
	return result.Items[0].ID.ChannelID, nil
}

// searchVideoIDs returns the channel's most recent video IDs, newest first.
func (c *YouTubeClient) searchVideoIDs(ctx context.Context, channelID string, n int) ([]string, error) {
	params := url.Values{
		"part":       {"id"},
		"channelId":  {channelID},
		"order":      {"date"},
		"type":       {"video"},
		"maxResults": {strconv.Itoa(n)},
		"key":        {c.cfg.YouTubeAPIKey},
	}

	var result struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
		} `json:"items"`
	}
	if err := c.getJSON(ctx, "/search", params, &result); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

// fetchVideoDetails loads snippet, statistics and duration for a batch of IDs.
func (c *YouTubeClient) fetchVideoDetails(ctx context.Context, ids []string) ([]models.Video, error) {
	params := url.Values{
		"part": {"snippet,statistics,contentDetails"},
		"id":   {strings.Join(ids, ",")},
		"key":  {c.cfg.YouTubeAPIKey},
	}

	var result struct {
		Items []struct {
			ID      string `json:"id"`
			Snippet struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				PublishedAt string `json:"publishedAt"`
				Thumbnails  struct {
					High struct {
						URL string `json:"url"`
					} `json:"high"`
				} `json:"thumbnails"`
			} `json:"snippet"`
			Statistics struct {
				ViewCount    string `json:"viewCount"`
				LikeCount    string `json:"likeCount"`
				CommentCount string `json:"commentCount"`
			} `json:"statistics"`
			ContentDetails struct {
				Duration string `json:"duration"`
			} `json:"contentDetails"`
		} `json:"items"`
	}
	if err := c.getJSON(ctx, "/videos", params, &result); err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(result.Items))
	for _, item := range result.Items {
		v := models.Video{
			VideoID:     item.ID,
			Title:       item.Snippet.Title,
			Description: truncate(item.Snippet.Description, descriptionLimit),
			PublishedAt: item.Snippet.PublishedAt,
			Likes:       parseCount(item.Statistics.LikeCount),
			Comments:    parseCount(item.Statistics.CommentCount),
			Thumbnail:   item.Snippet.Thumbnails.High.URL,
			URL:         "https://www.youtube.com/watch?v=" + item.ID,
		}

		// viewCount is absent when the channel hides statistics
		if item.Statistics.ViewCount != "" {
			views := parseCount(item.Statistics.ViewCount)
			v.Views = &views
		}

		if item.ContentDetails.Duration != "" {
			seconds, err := ParseISO8601Duration(item.ContentDetails.Duration)
			if err != nil {
				slog.Warn("Unparseable video duration",
					"video_id", item.ID, "duration", item.ContentDetails.Duration)
			} else {
				v.DurationSeconds = seconds
			}
		}

		videos = append(videos, v)
	}
	return videos, nil
}

// getJSON performs a GET against the YouTube API and decodes the response.
func (c *YouTubeClient) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.cfg.YouTubeBaseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube API returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parseCount(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// truncate cuts s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
