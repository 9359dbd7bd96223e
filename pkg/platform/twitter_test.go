package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/pkg/config"
)

func newTwitterTestClient(t *testing.T, handler http.HandlerFunc) *TwitterClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultPlatformConfig()
	cfg.TwitterBaseURL = srv.URL
	cfg.TwitterAPIKey = "test-key"
	return NewTwitterClient(cfg)
}

func TestExtractHandle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://twitter.com/alice", "alice"},
		{"https://x.com/bob_dev", "bob_dev"},
		{"https://x.com/@carol", "carol"},
		{"@dave", "dave"},
		{"erin", "erin"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractHandle(tt.input))
		})
	}
}

func TestFetchRecentTweets_SinglePage(t *testing.T) {
	client := newTwitterTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		assert.Equal(t, "alice", r.URL.Query().Get("userName"))
		fmt.Fprint(w, `{"tweets":[
			{"text":"hello","likeCount":10,"retweetCount":2,"viewCount":500,
			 "conversationId":"c1","author":{"id":"123","followers":4000}},
			{"text":"sparse"}
		],"has_next_page":false}`)
	})

	tweets, err := client.FetchRecentTweets(context.Background(), "https://x.com/alice", 20)
	require.NoError(t, err)
	require.Len(t, tweets, 2)

	assert.Equal(t, "hello", tweets[0].Text)
	assert.Equal(t, int64(10), tweets[0].LikeCount)
	assert.Equal(t, int64(4000), tweets[0].AuthorFollowers)

	// Absent counters normalize to zero
	assert.Equal(t, int64(0), tweets[1].LikeCount)
	assert.Equal(t, int64(0), tweets[1].ViewCount)
	assert.False(t, tweets[1].IsReply)
}

func TestFetchRecentTweets_PaginatesByUserID(t *testing.T) {
	var pages int
	client := newTwitterTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		pages++
		switch pages {
		case 1:
			assert.Equal(t, "alice", r.URL.Query().Get("userName"))
			assert.Empty(t, r.URL.Query().Get("cursor"))
			fmt.Fprint(w, `{"tweets":[{"text":"t1","author":{"id":"999"}}],
				"has_next_page":true,"next_cursor":"cur-2"}`)
		case 2:
			// Second page switches to the numeric user ID
			assert.Equal(t, "999", r.URL.Query().Get("userId"))
			assert.Equal(t, "cur-2", r.URL.Query().Get("cursor"))
			fmt.Fprint(w, `{"tweets":[{"text":"t2"},{"text":"t3"}],"has_next_page":false}`)
		default:
			t.Fatal("unexpected extra page fetch")
		}
	})

	tweets, err := client.FetchRecentTweets(context.Background(), "alice", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	require.Len(t, tweets, 3)
	assert.Equal(t, "t3", tweets[2].Text)
}

func TestFetchRecentTweets_StopsAtCap(t *testing.T) {
	client := newTwitterTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tweets":[{"text":"a"},{"text":"b"},{"text":"c"}],
			"has_next_page":true,"next_cursor":"more"}`)
	})

	tweets, err := client.FetchRecentTweets(context.Background(), "alice", 2)
	require.NoError(t, err)
	assert.Len(t, tweets, 2)
}

func TestFetchRecentTweets_PageSafetyLimit(t *testing.T) {
	var pages int
	client := newTwitterTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		pages++
		fmt.Fprintf(w, `{"tweets":[{"text":"p%d","author":{"id":"1"}}],
			"has_next_page":true,"next_cursor":"c%d"}`, pages, pages)
	})

	tweets, err := client.FetchRecentTweets(context.Background(), "alice", 100)
	require.NoError(t, err)
	assert.Equal(t, maxTweetPages, pages)
	assert.Len(t, tweets, maxTweetPages)
}

func TestFetchRecentTweets_HTTPError(t *testing.T) {
	client := newTwitterTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	tweets, err := client.FetchRecentTweets(context.Background(), "alice", 5)
	assert.Error(t, err)
	assert.Empty(t, tweets)
}
