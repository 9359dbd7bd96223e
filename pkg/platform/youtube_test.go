package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/pkg/config"
)

func newYouTubeTestClient(t *testing.T, handler http.HandlerFunc) *YouTubeClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultPlatformConfig()
	cfg.YouTubeBaseURL = srv.URL
	cfg.YouTubeAPIKey = "test-key"
	return NewYouTubeClient(cfg)
}

func TestResolveChannelID_DirectChannelURL(t *testing.T) {
	client := newYouTubeTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("direct channel URLs must resolve without an API call")
	})

	id, err := client.ResolveChannelID(context.Background(),
		"https://www.youtube.com/channel/UCabc123-xyz")
	require.NoError(t, err)
	assert.Equal(t, "UCabc123-xyz", id)
}

func TestResolveChannelID_Handle(t *testing.T) {
	client := newYouTubeTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("q"))
		assert.Equal(t, "channel", r.URL.Query().Get("type"))
		fmt.Fprint(w, `{"items":[{"id":{"channelId":"UChandle42"}}]}`)
	})

	id, err := client.ResolveChannelID(context.Background(),
		"https://www.youtube.com/@alice")
	require.NoError(t, err)
	assert.Equal(t, "UChandle42", id)
}

func TestResolveChannelID_LegacyCustomURL(t *testing.T) {
	client := newYouTubeTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "oldschool", r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"items":[{"id":{"channelId":"UClegacy"}}]}`)
	})

	id, err := client.ResolveChannelID(context.Background(),
		"https://www.youtube.com/user/oldschool")
	require.NoError(t, err)
	assert.Equal(t, "UClegacy", id)
}

func TestTruncate_RuneBoundary(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))

	// "héllo" is h(1) é(2) l l o — a 3-byte cut lands mid-é and must back up.
	assert.Equal(t, "h", truncate("héllo", 2))
	assert.Equal(t, "hé", truncate("héllo", 3))
	assert.True(t, utf8.ValidString(truncate("日本語のテキスト", 7)))
}

func TestResolveChannelID_Unrecognized(t *testing.T) {
	client := newYouTubeTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.ResolveChannelID(context.Background(), "https://example.com/watch?v=x")
	assert.Error(t, err)
}

func TestFetchRecentVideos(t *testing.T) {
	longDescription := make([]byte, 1200)
	for i := range longDescription {
		longDescription[i] = 'd'
	}

	client := newYouTubeTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			assert.Equal(t, "UCtest", r.URL.Query().Get("channelId"))
			assert.Equal(t, "8", r.URL.Query().Get("maxResults"))
			fmt.Fprint(w, `{"items":[{"id":{"videoId":"v1"}},{"id":{"videoId":"v2"}}]}`)
		case "/videos":
			assert.Equal(t, "v1,v2", r.URL.Query().Get("id"))
			fmt.Fprintf(w, `{"items":[
				{"id":"v1",
				 "snippet":{"title":"First","description":"%s","publishedAt":"2026-08-01T00:00:00Z",
				            "thumbnails":{"high":{"url":"https://i.ytimg.com/v1.jpg"}}},
				 "statistics":{"viewCount":"1000","likeCount":"50","commentCount":"7"},
				 "contentDetails":{"duration":"PT15M33S"}},
				{"id":"v2",
				 "snippet":{"title":"Hidden stats","description":"short","publishedAt":"2026-08-02T00:00:00Z"},
				 "statistics":{},
				 "contentDetails":{"duration":"PT45S"}}
			]}`, longDescription)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	videos, err := client.FetchRecentVideos(context.Background(),
		"https://www.youtube.com/channel/UCtest", 0)
	require.NoError(t, err)
	require.Len(t, videos, 2)

	first := videos[0]
	assert.Equal(t, "v1", first.VideoID)
	assert.Equal(t, "First", first.Title)
	require.NotNil(t, first.Views)
	assert.Equal(t, int64(1000), *first.Views)
	assert.Equal(t, int64(50), first.Likes)
	assert.Equal(t, 933, first.DurationSeconds)
	assert.Len(t, first.Description, 800)
	assert.Equal(t, "https://www.youtube.com/watch?v=v1", first.URL)

	// Missing viewCount stays nil, other counters default to zero
	second := videos[1]
	assert.Nil(t, second.Views)
	assert.Equal(t, int64(0), second.Likes)
	assert.Equal(t, 45, second.DurationSeconds)
}

func TestFetchRecentVideos_HTTPError(t *testing.T) {
	client := newYouTubeTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	videos, err := client.FetchRecentVideos(context.Background(),
		"https://www.youtube.com/channel/UCtest", 5)
	assert.Error(t, err)
	assert.Empty(t, videos)
}
