package reddit

import (
	"lurker/markup"
	"lurker/models"

	"github.com/tidwall/gjson"
)

const permalinkBase = "https://reddit.com"

const deletedAuthor = "[deleted]"

// ParsePosts flattens a listing payload into display-ready view models.
func ParsePosts(listing gjson.Result) []*models.PostViewModel {
	var posts []*models.PostViewModel
	for _, child := range listing.Get("data.children").Array() {
		data := child.Get("data")
		posts = append(posts, BuildPostViewModel(data, ExtractMedia(data)))
	}
	return posts
}

// ListingAfter returns the pagination cursor of a listing, empty when the
// listing is exhausted.
func ListingAfter(listing gjson.Result) string {
	return listing.Get("data.after").String()
}

// BuildPostViewModel combines selected raw post fields with an extracted
// media bundle. The result is never mutated afterwards.
func BuildPostViewModel(post gjson.Result, media *models.MediaBundle) *models.PostViewModel {
	author := deletedAuthor
	if value := post.Get("author"); value.Exists() {
		author = value.String()
	}
	return &models.PostViewModel{
		Title:       post.Get("title").String(),
		Author:      author,
		Subreddit:   post.Get("subreddit").String(),
		Score:       post.Get("score").Int(),
		NumComments: post.Get("num_comments").Int(),
		URL:         post.Get("url").String(),
		Permalink:   permalinkBase + post.Get("permalink").String(),
		CreatedUTC:  post.Get("created_utc").Float(),
		Selftext:    post.Get("selftext").String(),
		IsSelf:      post.Get("is_self").Bool(),
		ID:          post.Get("id").String(),
		Thumbnail:   GetThumbnail(post),

		ImageURL:    media.ImageURL,
		VideoURL:    media.VideoURL,
		AudioURL:    media.AudioURL,
		HLSURL:      media.HLSURL,
		GalleryURLs: media.GalleryURLs,
		IsVideo:     media.IsVideo,
	}
}

// ParseUserComments flattens a user comments listing for the profile page.
func ParseUserComments(listing gjson.Result) []*models.UserCommentViewModel {
	var comments []*models.UserCommentViewModel
	for _, child := range listing.Get("data.children").Array() {
		if child.Get("kind").String() != commentKind {
			continue
		}
		data := child.Get("data")
		author := deletedAuthor
		if value := data.Get("author"); value.Exists() {
			author = value.String()
		}
		body := data.Get("body").String()
		comments = append(comments, &models.UserCommentViewModel{
			Author:        author,
			Body:          body,
			FormattedBody: markup.FormatContent(body),
			Subreddit:     data.Get("subreddit").String(),
			Score:         data.Get("score").Int(),
			CreatedUTC:    data.Get("created_utc").Float(),
			ID:            data.Get("id").String(),
			LinkTitle:     data.Get("link_title").String(),
			Permalink:     permalinkBase + data.Get("permalink").String(),
		})
	}
	return comments
}
