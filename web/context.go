package web

import (
	"strings"

	"lurker/database"
	"lurker/models"

	"github.com/flosch/pongo2/v6"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// templateContext builds the base render context every page shares:
// the logged-in user (if any), their preferences, and pending flash
// messages. Anonymous visitors get the defaults.
func (srv *Server) templateContext(c echo.Context) pongo2.Context {
	data := pongo2.Context{
		"current_user":      nil,
		"pinned_subs":       []string{},
		"banned_subs":       []string{},
		"feed_pinned_subs":  []string{},
		"default_volume":    models.DefaultVolume,
		"default_speed":     models.DefaultSpeed,
		"sidebar_position":  models.DefaultSidebarPosition,
		"title_links":       true,
		"is_subreddit_page": false,
		"flash_errors":      srv.takeFlashes(c, "error"),
		"flash_messages":    srv.takeFlashes(c, "success"),
	}

	user := srv.currentUser(c)
	if user == nil {
		return data
	}
	data["current_user"] = user

	settings, err := database.GetUserSettings(user.ID)
	if err != nil {
		zap.S().Warnf("failed to load settings for user %d: %v", user.ID, err)
		return data
	}
	data["pinned_subs"] = settings.Pinned()
	data["banned_subs"] = settings.Banned()
	data["feed_pinned_subs"] = settings.FeedPinned()
	data["default_volume"] = settings.DefaultVolume
	data["default_speed"] = settings.DefaultSpeed
	data["sidebar_position"] = settings.SidebarPosition
	data["title_links"] = settings.TitleLinksEnabled()
	return data
}

// filterBannedPosts drops posts from subreddits the user has banned.
func (srv *Server) filterBannedPosts(c echo.Context, posts []*models.PostViewModel) []*models.PostViewModel {
	banned := srv.bannedSubs(c)
	if len(banned) == 0 {
		return posts
	}
	filtered := posts[:0]
	for _, post := range posts {
		if _, ok := banned[strings.ToLower(post.Subreddit)]; !ok {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

func (srv *Server) bannedSubs(c echo.Context) map[string]struct{} {
	user := srv.currentUser(c)
	if user == nil {
		return nil
	}
	subs, err := database.GetUserBannedSubs(user.ID)
	if err != nil {
		zap.S().Warnf("failed to load banned subs for user %d: %v", user.ID, err)
		return nil
	}
	if len(subs) == 0 {
		return nil
	}
	banned := make(map[string]struct{}, len(subs))
	for _, sub := range subs {
		banned[sub] = struct{}{}
	}
	return banned
}
