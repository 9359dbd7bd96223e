// Package classify partitions platform content into high/low-traction
// cohorts. The cuts and engagement weights are load-bearing: downstream
// reasoning output depends on them, so they must not change.
package classify

import (
	"sort"

	"github.com/creatorloop/looper/pkg/models"
)

// MinTweets is the floor below which tweet classification is skipped and
// the forensics stage reports empty output for the competitor.
const MinTweets = 4

// Engagement score weights for tweets.
const (
	weightLikes     = 1.0
	weightRetweets  = 2.0
	weightReplies   = 1.5
	weightBookmarks = 3.0
)

// Videos partitions videos into (high, low) traction cohorts.
//
// Videos with nil or non-positive views are excluded from ranking; the
// remaining n are sorted descending by views. high is the top ceil(n/4);
// low is the bottom ceil(n/4) plus every excluded video. When fewer than
// two videos have views, the input is returned unpartitioned.
func Videos(videos []models.Video) (high, low []models.Video) {
	ranked := make([]models.Video, 0, len(videos))
	var zeroed []models.Video
	for _, v := range videos {
		if v.Views == nil || *v.Views <= 0 {
			zeroed = append(zeroed, v)
			continue
		}
		ranked = append(ranked, v)
	}

	n := len(ranked)
	if n < 2 {
		return videos, nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].Views > *ranked[j].Views
	})

	cut := quarterCeil(n)
	high = ranked[:cut]
	low = append(append([]models.Video{}, ranked[n-cut:]...), zeroed...)
	return high, low
}

// Tweets partitions tweets into (high, low) engagement cohorts by scoring
// each tweet with TweetScore and taking the top and bottom ceil(n/4).
// Below MinTweets both cohorts are empty.
func Tweets(tweets []models.Tweet) (high, low []models.Tweet) {
	n := len(tweets)
	if n < MinTweets {
		return nil, nil
	}

	ranked := append([]models.Tweet{}, tweets...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return TweetScore(ranked[i]) > TweetScore(ranked[j])
	})

	cut := quarterCeil(n)
	return ranked[:cut], ranked[n-cut:]
}

// TweetScore computes the weighted engagement rate of a tweet.
func TweetScore(t models.Tweet) float64 {
	views := t.ViewCount
	if views < 1 {
		views = 1
	}
	engagement := weightLikes*float64(t.LikeCount) +
		weightRetweets*float64(t.RetweetCount) +
		weightReplies*float64(t.ReplyCount) +
		weightBookmarks*float64(t.BookmarkCount)
	return engagement / float64(views)
}

// quarterCeil returns ceil(n/4).
func quarterCeil(n int) int {
	return (n + 3) / 4
}
