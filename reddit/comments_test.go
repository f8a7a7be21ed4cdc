package reddit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func commentNode(author, body string, extra string) string {
	node := `{"kind": "t1", "data": {"author": "` + author + `", "body": "` + body + `", "score": 5, "id": "c1", "created_utc": 1700000000`
	if extra != "" {
		node += ", " + extra
	}
	return node + `}}`
}

func TestParseCommentTreeBasic(t *testing.T) {
	comment := ParseCommentTree(gjson.Parse(commentNode("alice", "hello **world**", "")), 0)
	require.NotNil(t, comment)
	assert.Equal(t, "alice", comment.Author)
	assert.Equal(t, "hello **world**", comment.Body)
	assert.Contains(t, comment.FormattedBody, "<strong>world</strong>")
	assert.Equal(t, int64(5), comment.Score)
	assert.Equal(t, 0, comment.Depth)
	assert.Empty(t, comment.Replies)
}

func TestParseCommentTreeNonComment(t *testing.T) {
	assert.Nil(t, ParseCommentTree(gjson.Parse(`{"kind": "more", "data": {"count": 12}}`), 0))
	assert.Nil(t, ParseCommentTree(gjson.Parse(`{}`), 0))
}

func TestParseCommentTreeDropsStickied(t *testing.T) {
	node := commentNode("alice", "pinned info", `"stickied": true`)
	assert.Nil(t, ParseCommentTree(gjson.Parse(node), 0))
}

func TestParseCommentTreeDropsDistinguished(t *testing.T) {
	mod := commentNode("some_mod", "mod note", `"distinguished": "moderator"`)
	assert.Nil(t, ParseCommentTree(gjson.Parse(mod), 0))

	admin := commentNode("an_admin", "admin note", `"distinguished": "admin"`)
	assert.Nil(t, ParseCommentTree(gjson.Parse(admin), 0))

	special := commentNode("op", "normal comment", `"distinguished": "special"`)
	assert.NotNil(t, ParseCommentTree(gjson.Parse(special), 0))
}

func TestParseCommentTreeDropsBots(t *testing.T) {
	byName := commentNode("AutoModerator", "welcome to the sub", "")
	assert.Nil(t, ParseCommentTree(gjson.Parse(byName), 0))

	bySuffix := commentNode("SomeRandomBot", "anything", "")
	assert.Nil(t, ParseCommentTree(gjson.Parse(bySuffix), 0))

	byPhrase := commentNode("helpful_user", "I am a bot, and this action was performed automatically", "")
	assert.Nil(t, ParseCommentTree(gjson.Parse(byPhrase), 0))

	human := commentNode("regular_user", "an actual opinion", "")
	assert.NotNil(t, ParseCommentTree(gjson.Parse(human), 0))
}

func TestParseCommentTreeDeletedAuthor(t *testing.T) {
	comment := ParseCommentTree(gjson.Parse(`{"kind": "t1", "data": {"body": "orphaned"}}`), 0)
	require.NotNil(t, comment)
	assert.Equal(t, "[deleted]", comment.Author)
}

func TestParseCommentTreeReplies(t *testing.T) {
	payload := `{"kind": "t1", "data": {
		"author": "parent_author", "body": "parent", "id": "p",
		"replies": {"data": {"children": [
			{"kind": "t1", "data": {"author": "child_one", "body": "first"}},
			{"kind": "t1", "data": {"author": "AutoModerator", "body": "dropped"}},
			{"kind": "t1", "data": {"author": "child_two", "body": "second",
				"replies": {"data": {"children": [
					{"kind": "t1", "data": {"author": "grandchild", "body": "deep"}}
				]}}}},
			{"kind": "more", "data": {"count": 3}}
		]}}
	}}`
	comment := ParseCommentTree(gjson.Parse(payload), 0)
	require.NotNil(t, comment)
	require.Len(t, comment.Replies, 2)
	assert.Equal(t, "child_one", comment.Replies[0].Author)
	assert.Equal(t, "child_two", comment.Replies[1].Author)
	assert.Equal(t, 1, comment.Replies[0].Depth)
	require.Len(t, comment.Replies[1].Replies, 1)
	assert.Equal(t, 2, comment.Replies[1].Replies[0].Depth)
}

func TestParseCommentTreeEmptyStringReplies(t *testing.T) {
	// the API sends "" instead of an object when there are no replies
	node := commentNode("alice", "leaf", `"replies": ""`)
	comment := ParseCommentTree(gjson.Parse(node), 0)
	require.NotNil(t, comment)
	assert.Empty(t, comment.Replies)
}

func TestParseCommentsShortPayload(t *testing.T) {
	assert.Nil(t, ParseComments(gjson.Parse(`[]`)))
	assert.Nil(t, ParseComments(gjson.Parse(`[{"data": {}}]`)))
	assert.Nil(t, ParseComments(gjson.Parse(`{}`)))
}

func TestParseCommentsTopLevelOrder(t *testing.T) {
	payload := `[
		{"data": {"children": [{"kind": "t3", "data": {"title": "the post"}}]}},
		{"data": {"children": [
			{"kind": "t1", "data": {"author": "first_author", "body": "one"}},
			{"kind": "t1", "data": {"author": "second_author", "body": "two"}},
			{"kind": "t1", "data": {"author": "third_author", "body": "three", "stickied": true}}
		]}}
	]`
	comments := ParseComments(gjson.Parse(payload))
	require.Len(t, comments, 2)
	assert.Equal(t, "first_author", comments[0].Author)
	assert.Equal(t, "second_author", comments[1].Author)
	assert.Equal(t, 0, comments[0].Depth)
}
