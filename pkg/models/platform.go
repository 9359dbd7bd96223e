package models

// Platform identifiers used across goals, plans, and content rows.
const (
	PlatformYouTube = "youtube"
	PlatformTwitter = "twitter"
)

// Video is a normalized YouTube video record.
// Views is nil when the provider withheld the statistic.
type Video struct {
	VideoID         string `json:"video_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	PublishedAt     string `json:"published_at"`
	Views           *int64 `json:"views"`
	Likes           int64  `json:"likes"`
	Comments        int64  `json:"comments"`
	DurationSeconds int    `json:"duration_seconds"`
	Thumbnail       string `json:"thumbnail"`
	URL             string `json:"url"`
}

// ViewCount returns the view count, treating nil as 0.
func (v Video) ViewCount() int64 {
	if v.Views == nil {
		return 0
	}
	return *v.Views
}

// Tweet is a normalized Twitter/X post record.
type Tweet struct {
	Text            string `json:"text"`
	LikeCount       int64  `json:"likeCount"`
	RetweetCount    int64  `json:"retweetCount"`
	ReplyCount      int64  `json:"replyCount"`
	ViewCount       int64  `json:"viewCount"`
	BookmarkCount   int64  `json:"bookmarkCount"`
	ConversationID  string `json:"conversationId"`
	IsReply         bool   `json:"isReply"`
	AuthorFollowers int64  `json:"author_followers"`
}
