package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"lurker/config"
	"lurker/models"
	"lurker/reddit"

	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

func (srv *Server) WebHome(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/r/all")
}

func (srv *Server) WebSubreddit(c echo.Context) error {
	cfg := config.Env
	name := c.Param("name")
	sort := queryDefault(c, "sort", cfg.DefaultSort)
	timeFilter := queryDefault(c, "t", "day")
	limit := queryInt(c, "limit", cfg.DefaultPostLimit)

	listing, err := srv.fetchSubreddit(c, name, sort, limit, "", timeFilter)
	if err != nil {
		zap.S().Warnf("failed to fetch r/%s: %v", name, err)
		return echo.NewHTTPError(http.StatusNotFound, "Could not load subreddit")
	}

	posts := srv.filterBannedPosts(c, reddit.ParsePosts(listing))

	data := srv.templateContext(c)
	data["is_subreddit_page"] = true
	data["posts"] = posts
	data["subreddit"] = name
	data["sort"] = sort
	data["time_filter"] = timeFilter
	data["after"] = reddit.ListingAfter(listing)
	data["comments_limit"] = cfg.TopCommentsPerPost
	return c.Render(http.StatusOK, "posts.html", data)
}

func (srv *Server) WebComments(c echo.Context) error {
	subreddit := c.Param("subreddit")
	postID := c.Param("post_id")

	payload, err := srv.fetchPostComments(c, subreddit, postID, 200)
	if err != nil || len(payload.Array()) < 2 {
		return echo.NewHTTPError(http.StatusNotFound, "Could not load comments")
	}

	postData := payload.Array()[0].Get("data.children.0.data")
	post := reddit.BuildPostViewModel(postData, reddit.ExtractMedia(postData))
	comments := reddit.ParseComments(payload)

	data := srv.templateContext(c)
	data["is_subreddit_page"] = true
	data["post"] = post
	data["comments"] = comments
	data["subreddit"] = subreddit
	return c.Render(http.StatusOK, "comments.html", data)
}

func (srv *Server) WebShare(c echo.Context) error {
	subreddit := c.Param("subreddit")
	postID := c.Param("post_id")

	payload, err := srv.fetchPostComments(c, subreddit, postID, 200)
	if err != nil || len(payload.Array()) < 2 {
		return echo.NewHTTPError(http.StatusNotFound, "Could not load post")
	}

	postData := payload.Array()[0].Get("data.children.0.data")
	post := reddit.BuildPostViewModel(postData, reddit.ExtractMedia(postData))

	data := srv.templateContext(c)
	data["post"] = post
	data["post_url"] = "/r/" + url.PathEscape(subreddit) + "/comments/" + url.PathEscape(postID)
	return c.Render(http.StatusOK, "share.html", data)
}

func (srv *Server) WebUserProfile(c echo.Context) error {
	cfg := config.Env
	username := c.Param("username")
	view := queryDefault(c, "view", "both")
	sort := queryDefault(c, "sort", cfg.DefaultSort)
	timeFilter := queryDefault(c, "t", "day")
	limit := queryInt(c, "limit", cfg.DefaultPostLimit)

	ctx := c.Request().Context()
	timeParam := ""
	if sort == "top" {
		timeParam = timeFilter
	}

	var postModels []*models.PostViewModel
	var commentModels []*models.UserCommentViewModel

	if view == "posts" || view == "both" {
		submitted, err := srv.client.FetchUser(ctx, username, "submitted", sort, limit, timeParam)
		if err != nil {
			zap.S().Warnf("failed to fetch posts for u/%s: %v", username, err)
		} else {
			postModels = reddit.ParsePosts(submitted)
		}
	}
	if view == "comments" || view == "both" {
		commented, err := srv.client.FetchUser(ctx, username, "comments", sort, limit, timeParam)
		if err != nil {
			zap.S().Warnf("failed to fetch comments for u/%s: %v", username, err)
		} else {
			commentModels = reddit.ParseUserComments(commented)
		}
	}

	postModels = srv.filterBannedPosts(c, postModels)

	data := srv.templateContext(c)
	data["username"] = username
	data["posts"] = postModels
	data["comments"] = commentModels
	data["view"] = view
	data["sort"] = sort
	data["time_filter"] = timeFilter
	return c.Render(http.StatusOK, "user.html", data)
}

func (srv *Server) WebSearch(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Redirect(http.StatusFound, "/r/"+url.PathEscape(query))
}

// fetchSubreddit reads the listing through the response cache.
func (srv *Server) fetchSubreddit(
	c echo.Context,
	name string,
	sort string,
	limit int,
	after string,
	timeFilter string,
) (gjson.Result, error) {
	cfg := config.Env
	timeParam := ""
	if sort == "top" {
		timeParam = timeFilter
	}
	key := strings.Join([]string{name, sort, strconv.Itoa(limit), after, timeParam}, "|")
	if raw, ok := srv.cache.Get("subreddit", key, cfg.SubredditCacheTTL); ok {
		return gjson.ParseBytes(raw), nil
	}

	listing, err := srv.client.FetchSubreddit(c.Request().Context(), name, sort, limit, after, timeParam)
	if err != nil {
		return gjson.Result{}, err
	}
	if err := srv.cache.Set("subreddit", key, []byte(listing.Raw)); err != nil {
		zap.S().Warnf("failed to cache subreddit listing: %v", err)
	}
	return listing, nil
}

// fetchPostComments reads the post+comments payload through the cache.
func (srv *Server) fetchPostComments(
	c echo.Context,
	subreddit string,
	postID string,
	limit int,
) (gjson.Result, error) {
	cfg := config.Env
	key := strings.Join([]string{subreddit, postID, strconv.Itoa(limit)}, "|")
	if raw, ok := srv.cache.Get("post_comments", key, cfg.CommentsCacheTTL); ok {
		return gjson.ParseBytes(raw), nil
	}

	payload, err := srv.client.FetchPostComments(c.Request().Context(), subreddit, postID, limit)
	if err != nil {
		return gjson.Result{}, err
	}
	if err := srv.cache.Set("post_comments", key, []byte(payload.Raw)); err != nil {
		zap.S().Warnf("failed to cache comments payload: %v", err)
	}
	// courtesy delay so lazy comment loading doesn't hammer the API
	time.Sleep(cfg.RateLimitDelay)
	return payload, nil
}

func queryDefault(c echo.Context, name string, fallback string) string {
	if value := c.QueryParam(name); value != "" {
		return value
	}
	return fallback
}

func queryInt(c echo.Context, name string, fallback int) int {
	if value := c.QueryParam(name); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
