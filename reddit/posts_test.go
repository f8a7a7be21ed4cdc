package reddit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestBuildPostViewModel(t *testing.T) {
	post := gjson.Parse(`{
		"title": "A title",
		"author": "someone",
		"subreddit": "golang",
		"score": 42,
		"num_comments": 7,
		"url": "https://example.com/article",
		"permalink": "/r/golang/comments/abc/a_title/",
		"created_utc": 1700000000.0,
		"selftext": "",
		"is_self": false,
		"id": "abc"
	}`)
	vm := BuildPostViewModel(post, ExtractMedia(post))
	assert.Equal(t, "A title", vm.Title)
	assert.Equal(t, "someone", vm.Author)
	assert.Equal(t, "golang", vm.Subreddit)
	assert.Equal(t, int64(42), vm.Score)
	assert.Equal(t, int64(7), vm.NumComments)
	assert.Equal(t, "https://reddit.com/r/golang/comments/abc/a_title/", vm.Permalink)
	assert.Equal(t, "abc", vm.ID)
	assert.False(t, vm.IsSelf)
	assert.False(t, vm.IsVideo)
	assert.Empty(t, vm.ImageURL)
	assert.Empty(t, vm.VideoURL)
}

func TestBuildPostViewModelMissingAuthor(t *testing.T) {
	post := gjson.Parse(`{"title": "orphan"}`)
	vm := BuildPostViewModel(post, ExtractMedia(post))
	assert.Equal(t, "[deleted]", vm.Author)
}

func TestParsePosts(t *testing.T) {
	listing := gjson.Parse(`{"data": {
		"after": "t3_next",
		"children": [
			{"kind": "t3", "data": {"id": "one", "title": "first"}},
			{"kind": "t3", "data": {"id": "two", "title": "second"}}
		]
	}}`)
	posts := ParsePosts(listing)
	require.Len(t, posts, 2)
	assert.Equal(t, "one", posts[0].ID)
	assert.Equal(t, "two", posts[1].ID)
	assert.Equal(t, "t3_next", ListingAfter(listing))
}

func TestParsePostsEmpty(t *testing.T) {
	assert.Empty(t, ParsePosts(gjson.Parse(`{}`)))
	assert.Equal(t, "", ListingAfter(gjson.Parse(`{}`)))
}

func TestParseUserComments(t *testing.T) {
	listing := gjson.Parse(`{"data": {"children": [
		{"kind": "t1", "data": {
			"author": "someone", "body": "a *reply*", "subreddit": "golang",
			"score": 3, "id": "c9", "link_title": "The thread",
			"permalink": "/r/golang/comments/abc/x/c9/"
		}},
		{"kind": "t3", "data": {"id": "notacomment", "title": "a post"}}
	]}}`)
	comments := ParseUserComments(listing)
	require.Len(t, comments, 1)
	assert.Equal(t, "someone", comments[0].Author)
	assert.Equal(t, "a *reply*", comments[0].Body)
	assert.Contains(t, comments[0].FormattedBody, "<em>reply</em>")
	assert.Equal(t, "The thread", comments[0].LinkTitle)
	assert.Equal(t, "https://reddit.com/r/golang/comments/abc/x/c9/", comments[0].Permalink)
}
