package reddit

import (
	"strings"

	"lurker/models"
	"lurker/util"

	"github.com/tidwall/gjson"
)

// audioSuffix is a filename-convention guess: the API does not expose the
// real audio track URL for hosted video, so the player has to tolerate a
// 404 on this one.
const audioSuffix = "/DASH_AUDIO_128.mp4"

var videoExtensions = []string{
	".mp4", ".webm", ".avi", ".mov", ".mkv", ".flv", ".wmv",
	".m4v", ".3gp", ".ogv", ".mpg", ".mpeg", ".gifv",
}

var imageExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp",
}

// ExtractMedia derives the best-effort media URLs from one raw post.
// Missing or malformed fields are treated as absent; this never fails.
func ExtractMedia(post gjson.Result) *models.MediaBundle {
	bundle := &models.MediaBundle{
		IsVideo: post.Get("is_video").Bool(),
	}

	// hosted video lives under secure_media, falling back to media
	media := post.Get("secure_media")
	if !media.IsObject() {
		media = post.Get("media")
	}
	if redditVideo := media.Get("reddit_video"); redditVideo.IsObject() {
		bundle.HLSURL = redditVideo.Get("hls_url").String()
		if fallbackURL := redditVideo.Get("fallback_url").String(); fallbackURL != "" {
			bundle.VideoURL = strings.SplitN(fallbackURL, "?", 2)[0]
			base := bundle.VideoURL
			if idx := strings.LastIndex(base, "/"); idx >= 0 {
				base = base[:idx]
			}
			bundle.AudioURL = base + audioSuffix
		}
	}

	// gallery items resolve through media_metadata, original order kept
	if post.Get("is_gallery").Bool() {
		metadata := post.Get("media_metadata")
		for _, item := range post.Get("gallery_data.items").Array() {
			mediaID := item.Get("media_id").String()
			if mediaID == "" {
				continue
			}
			if sourceURL := metadata.Get(mediaID + ".s.u").String(); sourceURL != "" {
				bundle.GalleryURLs = append(bundle.GalleryURLs, util.FixURL(sourceURL))
			}
		}
	}

	// preview only matters when there is no gallery
	var previewURL string
	if len(bundle.GalleryURLs) == 0 {
		if sourceURL := post.Get("preview.images.0.source.url").String(); sourceURL != "" {
			previewURL = util.FixURL(sourceURL)
		}
	}

	// an actual animated GIF beats a static preview
	directURL := stringField(post, "url")
	if strings.HasSuffix(strings.ToLower(directURL), ".gif") {
		bundle.ImageURL = directURL
	} else if previewURL != "" {
		bundle.ImageURL = previewURL
	}

	// last resort: direct media link by extension
	if bundle.ImageURL == "" && len(bundle.GalleryURLs) == 0 {
		lower := strings.ToLower(directURL)
		switch {
		case hasAnySuffix(lower, videoExtensions):
			bundle.VideoURL = directURL
			bundle.IsVideo = true
		case hasAnySuffix(lower, imageExtensions):
			bundle.ImageURL = directURL
		}
	}

	// hero image defaults to the first gallery entry
	if len(bundle.GalleryURLs) > 0 && bundle.ImageURL == "" {
		bundle.ImageURL = bundle.GalleryURLs[0]
	}

	return bundle
}

// GetThumbnail returns the best available thumbnail URL for a post.
func GetThumbnail(post gjson.Result) string {
	thumbnail := post.Get("thumbnail").String()
	if strings.HasPrefix(thumbnail, "http") {
		return util.FixURL(thumbnail)
	}

	if firstImage := post.Get("preview.images.0"); firstImage.IsObject() {
		resolutions := firstImage.Get("resolutions").Array()
		if len(resolutions) > 0 {
			for _, res := range resolutions {
				if res.Get("width").Int() >= 320 {
					return util.FixURL(res.Get("url").String())
				}
			}
			return util.FixURL(resolutions[len(resolutions)-1].Get("url").String())
		}
		if sourceURL := firstImage.Get("source.url").String(); sourceURL != "" {
			return util.FixURL(sourceURL)
		}
	}

	return ""
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// stringField reads a field only when it is actually a JSON string.
func stringField(obj gjson.Result, path string) string {
	value := obj.Get(path)
	if value.Type != gjson.String {
		return ""
	}
	return value.String()
}
