package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lurker/config"
	"lurker/models"
	"lurker/reddit"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// APIPosts serves the infinite-scroll feed: one listing page plus the
// cursor for the next one.
func (srv *Server) APIPosts(c echo.Context) error {
	cfg := config.Env
	subreddit := strings.TrimSpace(queryDefault(c, "subreddit", "all"))
	sort := queryDefault(c, "sort", cfg.DefaultSort)
	timeFilter := queryDefault(c, "t", "day")
	after := strings.TrimSpace(c.QueryParam("after"))
	limit := queryInt(c, "limit", cfg.DefaultPostLimit)

	listing, err := srv.fetchSubreddit(c, subreddit, sort, limit, after, timeFilter)
	if err != nil {
		zap.S().Warnf("failed to fetch r/%s: %v", subreddit, err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "could not load posts"})
	}

	posts := srv.filterBannedPosts(c, reddit.ParsePosts(listing))
	if posts == nil {
		posts = []*models.PostViewModel{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"posts":          posts,
		"after":          reddit.ListingAfter(listing),
		"comments_limit": cfg.TopCommentsPerPost,
	})
}

// APIComments returns the formatted comment tree for lazy loading under
// a post card.
func (srv *Server) APIComments(c echo.Context) error {
	cfg := config.Env
	subreddit := strings.TrimSpace(c.QueryParam("subreddit"))
	postID := strings.TrimSpace(c.QueryParam("post_id"))
	limit := queryInt(c, "limit", 200)

	if subreddit == "" || postID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing subreddit or post_id"})
	}

	fetchLimit := limit
	if cfg.TopCommentsFetchLimit > fetchLimit {
		fetchLimit = cfg.TopCommentsFetchLimit
	}
	payload, err := srv.fetchPostComments(c, subreddit, postID, fetchLimit)
	if err != nil {
		zap.S().Warnf("failed to fetch comments for %s/%s: %v", subreddit, postID, err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "could not load comments"})
	}

	comments := reddit.ParseComments(payload)
	if limit < len(comments) {
		comments = comments[:limit]
	}
	if comments == nil {
		comments = []*models.CommentNode{}
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": comments})
}

func (srv *Server) APISubredditAutocomplete(c echo.Context) error {
	cfg := config.Env
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return c.JSON(http.StatusOK, echo.Map{"results": []reddit.Suggestion{}})
	}
	limit := queryInt(c, "limit", 8)

	key := strings.ToLower(query) + "|" + strconv.Itoa(limit)
	if raw, ok := srv.cache.Get("autocomplete", key, cfg.AutocompleteCacheTTL); ok {
		var cached []reddit.Suggestion
		if err := json.Unmarshal(raw, &cached); err == nil {
			return c.JSON(http.StatusOK, echo.Map{"results": cached})
		}
	}

	results, err := srv.client.FetchSubredditAutocomplete(c.Request().Context(), query, limit)
	if err != nil {
		zap.S().Warnf("failed to fetch autocomplete for %q: %v", query, err)
		return c.JSON(http.StatusOK, echo.Map{"results": []reddit.Suggestion{}})
	}
	if results == nil {
		results = []reddit.Suggestion{}
	}
	time.Sleep(cfg.RateLimitDelay)

	if raw, err := json.Marshal(results); err == nil {
		if err := srv.cache.Set("autocomplete", key, raw); err != nil {
			zap.S().Warnf("failed to cache autocomplete results: %v", err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"results": results})
}
