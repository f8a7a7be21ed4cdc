package reddit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"lurker/util"

	"github.com/tidwall/gjson"
)

const maxListingLimit = 100

// Client talks to the public JSON API. All fetches go through a single
// retrying HTTP client; responses come back as gjson results so missing
// or malformed fields read as zero values downstream.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(baseURL string, userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: util.NewHTTPClient(timeout),
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

func (c *Client) getJSON(
	ctx context.Context,
	path string,
	params url.Values,
) (gjson.Result, error) {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read response body: %w", err)
	}
	return gjson.ParseBytes(body), nil
}

// FetchSubreddit fetches a listing from /r/<name>/<sort>.json. The time
// filter t only applies to the top sort; limit is capped at the API max.
func (c *Client) FetchSubreddit(
	ctx context.Context,
	name string,
	sort string,
	limit int,
	after string,
	t string,
) (gjson.Result, error) {
	if limit > maxListingLimit {
		limit = maxListingLimit
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if after != "" {
		params.Set("after", after)
	}
	if t != "" && sort == "top" {
		params.Set("t", t)
	}
	path := fmt.Sprintf("/r/%s/%s.json", url.PathEscape(name), url.PathEscape(sort))
	return c.getJSON(ctx, path, params)
}

// FetchPostComments fetches the two-element post+comments payload.
func (c *Client) FetchPostComments(
	ctx context.Context,
	subreddit string,
	postID string,
	limit int,
) (gjson.Result, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("depth", "10")
	params.Set("showmore", "false")
	path := fmt.Sprintf(
		"/r/%s/comments/%s.json",
		url.PathEscape(subreddit), url.PathEscape(postID),
	)
	return c.getJSON(ctx, path, params)
}

// FetchUser fetches a user's submitted posts or comments listing; content
// is either "submitted" or "comments".
func (c *Client) FetchUser(
	ctx context.Context,
	username string,
	content string,
	sort string,
	limit int,
	t string,
) (gjson.Result, error) {
	if limit > maxListingLimit {
		limit = maxListingLimit
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort", sort)
	if t != "" && sort == "top" {
		params.Set("t", t)
	}
	path := fmt.Sprintf(
		"/user/%s/%s.json",
		url.PathEscape(username), url.PathEscape(content),
	)
	return c.getJSON(ctx, path, params)
}

// Suggestion is one subreddit autocomplete result.
type Suggestion struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Subscribers int64  `json:"subscribers"`
}

func (c *Client) FetchSubredditAutocomplete(
	ctx context.Context,
	query string,
	limit int,
) ([]Suggestion, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("include_profiles", "false")
	data, err := c.getJSON(ctx, "/api/subreddit_autocomplete_v2.json", params)
	if err != nil {
		return nil, err
	}

	var results []Suggestion
	for _, child := range data.Get("data.children").Array() {
		item := child.Get("data")
		name := item.Get("display_name").String()
		if name == "" {
			continue
		}
		results = append(results, Suggestion{
			Name:        name,
			Title:       item.Get("title").String(),
			Subscribers: item.Get("subscribers").Int(),
		})
	}
	return results, nil
}
