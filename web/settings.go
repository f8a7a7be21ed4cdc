package web

import (
	"net/http"
	"strconv"

	"lurker/database"
	"lurker/models"
	"lurker/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (srv *Server) WebSettings(c echo.Context) error {
	user := srv.currentUser(c)
	settings, err := database.GetUserSettings(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load settings")
	}

	if c.Request().Method == http.MethodPost {
		applySettingsAction(c, settings)
		if err := database.SaveUserSettings(user.ID, settings); err != nil {
			zap.S().Errorf("failed to save settings for user %d: %v", user.ID, err)
			srv.addFlash(c, "error", "Could not save settings.")
		}
		return c.Redirect(http.StatusFound, "/settings")
	}

	data := srv.templateContext(c)
	return c.Render(http.StatusOK, "settings.html", data)
}

func applySettingsAction(c echo.Context, settings *models.UserSettings) {
	action := c.FormValue("action")
	sub := util.NormalizeSubreddit(c.FormValue("sub"))
	pinned := settings.Pinned()
	banned := settings.Banned()

	switch action {
	case "add":
		if sub != "" && !contains(pinned, sub) {
			settings.PinnedSubs = models.JoinSubs(append(pinned, sub))
		}
	case "remove":
		settings.PinnedSubs = models.JoinSubs(remove(pinned, sub))
	case "move_up":
		settings.PinnedSubs = models.JoinSubs(move(pinned, sub, -1))
	case "move_down":
		settings.PinnedSubs = models.JoinSubs(move(pinned, sub, 1))
	case "reorder":
		if order := c.FormValue("order"); order != "" {
			settings.PinnedSubs = models.JoinSubs(models.SplitSubs(order))
		}
	case "unban":
		settings.BannedSubs = models.JoinSubs(remove(banned, sub))
	case "save_playback":
		volume, err := strconv.Atoi(c.FormValue("default_volume"))
		if err != nil {
			volume = models.DefaultVolume
		}
		settings.DefaultVolume = clampInt(volume, 0, 100)
		speed, err := strconv.ParseFloat(c.FormValue("default_speed"), 64)
		if err != nil {
			speed = models.DefaultSpeed
		}
		settings.DefaultSpeed = clampFloat(speed, 0.25, 2.0)
	case "save_sidebar":
		settings.SidebarPosition = c.FormValue("sidebar_position")
	case "save_behavior":
		enabled := false
		switch c.FormValue("title_links") {
		case "on", "1", "true":
			enabled = true
		}
		settings.TitleLinks = &enabled
	}
}

func (srv *Server) WebPinSubreddit(c echo.Context) error {
	user := srv.currentUser(c)
	sub := util.NormalizeSubreddit(c.Param("subreddit"))
	if sub == "" {
		return srv.redirectBack(c)
	}

	settings, err := database.GetUserSettings(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load settings")
	}
	if !contains(settings.Pinned(), sub) {
		settings.PinnedSubs = models.JoinSubs(append(settings.Pinned(), sub))
		settings.FeedPinnedSubs = models.JoinSubs(append(settings.FeedPinned(), sub))
		if err := database.SaveUserSettings(user.ID, settings); err != nil {
			zap.S().Errorf("failed to pin r/%s for user %d: %v", sub, user.ID, err)
		}
	}
	return srv.redirectBack(c)
}

func (srv *Server) WebUnpinSubreddit(c echo.Context) error {
	user := srv.currentUser(c)
	sub := util.NormalizeSubreddit(c.Param("subreddit"))
	if sub == "" {
		return srv.redirectBack(c)
	}

	settings, err := database.GetUserSettings(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load settings")
	}
	if contains(settings.FeedPinned(), sub) {
		settings.PinnedSubs = models.JoinSubs(remove(settings.Pinned(), sub))
		settings.FeedPinnedSubs = models.JoinSubs(remove(settings.FeedPinned(), sub))
		if err := database.SaveUserSettings(user.ID, settings); err != nil {
			zap.S().Errorf("failed to unpin r/%s for user %d: %v", sub, user.ID, err)
		}
	}
	return srv.redirectBack(c)
}

func (srv *Server) WebBanSubreddit(c echo.Context) error {
	user := srv.currentUser(c)
	sub := util.NormalizeSubreddit(c.Param("subreddit"))
	if sub == "" {
		return srv.redirectBack(c)
	}

	settings, err := database.GetUserSettings(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load settings")
	}
	if !contains(settings.Banned(), sub) {
		settings.BannedSubs = models.JoinSubs(append(settings.Banned(), sub))
		if err := database.SaveUserSettings(user.ID, settings); err != nil {
			zap.S().Errorf("failed to ban r/%s for user %d: %v", sub, user.ID, err)
		}
	}
	return srv.redirectBack(c)
}

func (srv *Server) redirectBack(c echo.Context) error {
	referer := c.Request().Referer()
	if referer == "" {
		referer = "/"
	}
	return c.Redirect(http.StatusFound, referer)
}

func contains(subs []string, sub string) bool {
	for _, s := range subs {
		if s == sub {
			return true
		}
	}
	return false
}

func remove(subs []string, sub string) []string {
	var out []string
	for _, s := range subs {
		if s != sub {
			out = append(out, s)
		}
	}
	return out
}

// move shifts sub one position in the list; delta is -1 for up, 1 for
// down. Out-of-range moves are no-ops.
func move(subs []string, sub string, delta int) []string {
	for i, s := range subs {
		if s != sub {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(subs) {
			break
		}
		subs[i], subs[j] = subs[j], subs[i]
		break
	}
	return subs
}

func clampInt(value int, min int, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampFloat(value float64, min float64, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
