package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/creatorloop/looper/pkg/config"
	"github.com/creatorloop/looper/pkg/models"
)

// maxTweetPages bounds cursor pagination regardless of the requested count.
const maxTweetPages = 10

var twitterURLPattern = regexp.MustCompile(`(?:twitter\.com|x\.com)/@?([\w]+)`)

// TwitterClient fetches recent tweets for a handle via the Twitter data
// provider, paginating by cursor.
type TwitterClient struct {
	cfg        *config.PlatformConfig
	httpClient *http.Client
}

// NewTwitterClient creates a Twitter fetcher from platform configuration.
func NewTwitterClient(cfg *config.PlatformConfig) *TwitterClient {
	return &TwitterClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// ExtractHandle pulls the username out of a profile URL. Bare handles
// (with or without a leading @) pass through unchanged.
func ExtractHandle(s string) string {
	if m := twitterURLPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return strings.TrimPrefix(strings.TrimSpace(s), "@")
}

// FetchRecentTweets returns up to n normalized tweets for a handle,
// following cursors until the cap, no-more-pages, or the page safety limit.
func (c *TwitterClient) FetchRecentTweets(ctx context.Context, handleOrURL string, n int) ([]models.Tweet, error) {
	if n <= 0 {
		n = c.cfg.TwitterTweetCount
	}

	handle := ExtractHandle(handleOrURL)
	if handle == "" {
		return nil, fmt.Errorf("empty twitter handle in %q", handleOrURL)
	}

	var (
		tweets []models.Tweet
		cursor string
		userID string
	)
	for page := 0; page < maxTweetPages && len(tweets) < n; page++ {
		resp, err := c.fetchPage(ctx, handle, userID, cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tweets for @%s: %w", handle, err)
		}

		for _, raw := range resp.Tweets {
			tweets = append(tweets, raw.normalize())
			if len(tweets) >= n {
				break
			}
		}

		// Prefer the numeric user ID for subsequent pages once known
		if userID == "" && len(resp.Tweets) > 0 {
			userID = resp.Tweets[0].Author.ID
		}

		if !resp.HasNextPage || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}
	return tweets, nil
}

// rawTweet is the provider's wire shape for a single tweet.
type rawTweet struct {
	Text           string `json:"text"`
	LikeCount      int64  `json:"likeCount"`
	RetweetCount   int64  `json:"retweetCount"`
	ReplyCount     int64  `json:"replyCount"`
	ViewCount      int64  `json:"viewCount"`
	BookmarkCount  int64  `json:"bookmarkCount"`
	ConversationID string `json:"conversationId"`
	IsReply        bool   `json:"isReply"`
	Author         struct {
		ID        string `json:"id"`
		Followers int64  `json:"followers"`
	} `json:"author"`
}

func (r rawTweet) normalize() models.Tweet {
	return models.Tweet{
		Text:            r.Text,
		LikeCount:       r.LikeCount,
		RetweetCount:    r.RetweetCount,
		ReplyCount:      r.ReplyCount,
		ViewCount:       r.ViewCount,
		BookmarkCount:   r.BookmarkCount,
		ConversationID:  r.ConversationID,
		IsReply:         r.IsReply,
		AuthorFollowers: r.Author.Followers,
	}
}

type tweetPage struct {
	Tweets      []rawTweet `json:"tweets"`
	HasNextPage bool       `json:"has_next_page"`
	NextCursor  string     `json:"next_cursor"`
}

func (c *TwitterClient) fetchPage(ctx context.Context, handle, userID, cursor string) (*tweetPage, error) {
	params := url.Values{}
	if userID != "" {
		params.Set("userId", userID)
	} else {
		params.Set("userName", handle)
	}
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	reqURL := c.cfg.TwitterBaseURL + "/twitter/user/last_tweets?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.cfg.TwitterAPIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twitter API returned status %d", resp.StatusCode)
	}

	var page tweetPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &page, nil
}
