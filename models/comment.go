package models

// CommentNode is one surviving comment in a parsed tree. Depth of every
// child equals the parent depth plus one; sibling order is preserved.
type CommentNode struct {
	Author        string         `json:"author"`
	Body          string         `json:"body"`
	FormattedBody string         `json:"formatted_body"`
	Score         int64          `json:"score"`
	CreatedUTC    float64        `json:"created_utc"`
	ID            string         `json:"id"`
	Depth         int            `json:"depth"`
	Replies       []*CommentNode `json:"replies"`
}
