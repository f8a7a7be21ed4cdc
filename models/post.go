package models

// PostViewModel is a flattened, display-ready record built from one raw
// post plus its extracted media. It is created per request and never
// mutated after construction.
type PostViewModel struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Score       int64   `json:"score"`
	NumComments int64   `json:"num_comments"`
	URL         string  `json:"url"`
	Permalink   string  `json:"permalink"`
	CreatedUTC  float64 `json:"created_utc"`
	Selftext    string  `json:"selftext"`
	IsSelf      bool    `json:"is_self"`
	ID          string  `json:"id"`
	Thumbnail   string  `json:"thumbnail"`

	ImageURL    string   `json:"image_url"`
	VideoURL    string   `json:"video_url"`
	AudioURL    string   `json:"audio_url"`
	HLSURL      string   `json:"hls_url"`
	GalleryURLs []string `json:"gallery_urls"`
	IsVideo     bool     `json:"is_video"`
}

// UserCommentViewModel is a flattened record for a comment shown on a
// user's profile page (outside of any post thread).
type UserCommentViewModel struct {
	Author        string  `json:"author"`
	Body          string  `json:"body"`
	FormattedBody string  `json:"formatted_body"`
	Subreddit     string  `json:"subreddit"`
	Score         int64   `json:"score"`
	CreatedUTC    float64 `json:"created_utc"`
	ID            string  `json:"id"`
	LinkTitle     string  `json:"link_title"`
	Permalink     string  `json:"permalink"`
}
