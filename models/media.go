package models

// MediaBundle holds the best-effort media URLs derived from a single raw
// post. Empty string means the field is absent; it is never an error.
type MediaBundle struct {
	ImageURL    string   `json:"image_url"`
	VideoURL    string   `json:"video_url"`
	AudioURL    string   `json:"audio_url"`
	HLSURL      string   `json:"hls_url"`
	GalleryURLs []string `json:"gallery_urls"`
	IsVideo     bool     `json:"is_video"`
}
