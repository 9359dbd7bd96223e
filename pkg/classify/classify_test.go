package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/pkg/models"
)

func video(id string, views *int64) models.Video {
	return models.Video{VideoID: id, Views: views}
}

func intp(v int64) *int64 {
	return &v
}

func TestVideos_QuartileCuts(t *testing.T) {
	// Views [1000, 500, 200, 100, 50, 10, 0, nil]: six rankable videos,
	// ceil(6/4) = 2, zero/nil videos join the low cohort.
	videos := []models.Video{
		video("a", intp(1000)),
		video("b", intp(500)),
		video("c", intp(200)),
		video("d", intp(100)),
		video("e", intp(50)),
		video("f", intp(10)),
		video("g", intp(0)),
		video("h", nil),
	}

	high, low := Videos(videos)

	require.Len(t, high, 2)
	assert.Equal(t, "a", high[0].VideoID)
	assert.Equal(t, "b", high[1].VideoID)

	require.Len(t, low, 4)
	assert.Equal(t, "e", low[0].VideoID)
	assert.Equal(t, "f", low[1].VideoID)
	assert.Equal(t, "g", low[2].VideoID)
	assert.Equal(t, "h", low[3].VideoID)
}

func TestVideos_UnsortedInput(t *testing.T) {
	videos := []models.Video{
		video("low1", intp(10)),
		video("top", intp(9000)),
		video("mid", intp(400)),
		video("low2", intp(5)),
	}

	high, low := Videos(videos)

	require.Len(t, high, 1)
	assert.Equal(t, "top", high[0].VideoID)
	require.Len(t, low, 1)
	assert.Equal(t, "low2", low[0].VideoID)
}

func TestVideos_BelowFloor(t *testing.T) {
	tests := []struct {
		name   string
		videos []models.Video
	}{
		{"empty", nil},
		{"single", []models.Video{video("a", intp(100))}},
		{"one_rankable", []models.Video{video("a", intp(100)), video("b", nil), video("c", intp(0))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			high, low := Videos(tt.videos)
			assert.Equal(t, tt.videos, high)
			assert.Empty(t, low)
		})
	}
}

func TestVideos_HighDominatesLow(t *testing.T) {
	videos := []models.Video{
		video("a", intp(100)), video("b", intp(90)), video("c", intp(80)),
		video("d", intp(70)), video("e", intp(60)), video("f", intp(50)),
		video("g", intp(40)), video("h", intp(30)),
	}

	high, low := Videos(videos)

	require.NotEmpty(t, high)
	for _, h := range high {
		for _, l := range low {
			if l.ViewCount() > 0 {
				assert.GreaterOrEqual(t, h.ViewCount(), l.ViewCount())
			}
		}
	}
}

func TestTweetScore(t *testing.T) {
	tw := models.Tweet{
		LikeCount:     10,
		RetweetCount:  4,
		ReplyCount:    2,
		BookmarkCount: 1,
		ViewCount:     100,
	}
	// (10 + 2*4 + 1.5*2 + 3*1) / 100
	assert.InDelta(t, 0.24, TweetScore(tw), 1e-9)
}

func TestTweetScore_ZeroViews(t *testing.T) {
	tw := models.Tweet{LikeCount: 5}
	// Views clamp to 1, never divide by zero.
	assert.InDelta(t, 5.0, TweetScore(tw), 1e-9)
}

func TestTweets_QuartileCuts(t *testing.T) {
	tweets := []models.Tweet{
		{Text: "viral", LikeCount: 500, ViewCount: 100},
		{Text: "good", LikeCount: 50, ViewCount: 100},
		{Text: "meh", LikeCount: 5, ViewCount: 100},
		{Text: "dead", LikeCount: 0, ViewCount: 100},
	}

	high, low := Tweets(tweets)

	require.Len(t, high, 1)
	assert.Equal(t, "viral", high[0].Text)
	require.Len(t, low, 1)
	assert.Equal(t, "dead", low[0].Text)
}

func TestTweets_BelowFloor(t *testing.T) {
	tweets := []models.Tweet{
		{Text: "a", LikeCount: 1},
		{Text: "b", LikeCount: 2},
		{Text: "c", LikeCount: 3},
	}

	high, low := Tweets(tweets)
	assert.Empty(t, high)
	assert.Empty(t, low)
}

func TestTweets_CohortsBoundedByInput(t *testing.T) {
	tweets := make([]models.Tweet, 10)
	for i := range tweets {
		tweets[i] = models.Tweet{LikeCount: int64(i), ViewCount: 100}
	}

	high, low := Tweets(tweets)
	// ceil(10/4) = 3
	assert.Len(t, high, 3)
	assert.Len(t, low, 3)
	assert.LessOrEqual(t, len(high), len(tweets))
	assert.LessOrEqual(t, len(low), len(tweets))
}
