package reddit

import (
	"strings"

	"lurker/markup"
	"lurker/models"

	"github.com/tidwall/gjson"
)

const commentKind = "t1"

var botAuthors = map[string]struct{}{
	"AutoModerator":    {},
	"sneakpeekbot":     {},
	"TweetPoster":      {},
	"autowikibot":      {},
	"transcribot":      {},
	"HelperBot":        {},
	"RemindMeBot":      {},
	"VideoLinkBot":     {},
	"RepostSleuthBot":  {},
	"Mentioned_Videos": {},
	"ImagesOfNetwork":  {},
}

var botPhrases = []string{
	"i am a bot",
	"i'm a bot",
	"this action was performed automatically",
	"beep boop",
	"^(this action",
	"this is a bot",
	"automoderator",
}

func isBotComment(author string, body string) bool {
	if _, known := botAuthors[author]; known {
		return true
	}

	authorLower := strings.ToLower(author)
	if strings.Contains(authorLower, "bot") || strings.HasSuffix(authorLower, "bot") {
		return true
	}

	bodyLower := strings.ToLower(body)
	for _, phrase := range botPhrases {
		if strings.Contains(bodyLower, phrase) {
			return true
		}
	}
	return false
}

// ParseCommentTree recursively parses one comment node and its replies,
// preserving sibling order. Returns nil for nodes that are not comments,
// are pinned or moderator-distinguished, or look bot-authored; dropped
// nodes contribute nothing to the parent's reply list.
func ParseCommentTree(node gjson.Result, depth int) *models.CommentNode {
	if node.Get("kind").String() != commentKind {
		return nil
	}

	data := node.Get("data")
	author := deletedAuthor
	if value := data.Get("author"); value.Exists() {
		author = value.String()
	}
	body := data.Get("body").String()

	if data.Get("stickied").Bool() {
		return nil
	}
	switch data.Get("distinguished").String() {
	case "moderator", "admin":
		return nil
	}
	if isBotComment(author, body) {
		return nil
	}

	comment := &models.CommentNode{
		Author:        author,
		Body:          body,
		FormattedBody: markup.FormatContent(body),
		Score:         data.Get("score").Int(),
		CreatedUTC:    data.Get("created_utc").Float(),
		ID:            data.Get("id").String(),
		Depth:         depth,
	}

	if replies := data.Get("replies"); replies.IsObject() {
		for _, child := range replies.Get("data.children").Array() {
			if parsed := ParseCommentTree(child, depth+1); parsed != nil {
				comment.Replies = append(comment.Replies, parsed)
			}
		}
	}

	return comment
}

// ParseComments walks the second element of a post's comments payload and
// returns the surviving top-level comments with nested replies.
func ParseComments(payload gjson.Result) []*models.CommentNode {
	elements := payload.Array()
	if len(elements) < 2 {
		return nil
	}

	var comments []*models.CommentNode
	for _, child := range elements[1].Get("data.children").Array() {
		if parsed := ParseCommentTree(child, 0); parsed != nil {
			comments = append(comments, parsed)
		}
	}
	return comments
}
