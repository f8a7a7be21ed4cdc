package web

import (
	"net/http"

	"lurker/database"
	"lurker/models"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	sessionName      = "lurker_session"
	rememberDuration = 30 * 24 * 60 * 60 // seconds
)

func (srv *Server) session(c echo.Context) *sessions.Session {
	sess, err := srv.store.Get(c.Request(), sessionName)
	if err != nil {
		// a stale or tampered cookie just means a fresh session
		zap.S().Debugf("failed to decode session: %v", err)
	}
	return sess
}

func (srv *Server) currentUser(c echo.Context) *models.User {
	sess := srv.session(c)
	rawID, ok := sess.Values["user_id"]
	if !ok {
		return nil
	}
	userID, ok := rawID.(uint)
	if !ok {
		return nil
	}
	user, err := database.GetUser(userID)
	if err != nil {
		return nil
	}
	return user
}

func (srv *Server) loginSession(c echo.Context, user *models.User, remember bool) error {
	sess := srv.session(c)
	sess.Values["user_id"] = user.ID
	sess.Options.MaxAge = 0
	if remember {
		sess.Options.MaxAge = rememberDuration
	}
	sess.Options.HttpOnly = true
	sess.Options.SameSite = http.SameSiteLaxMode
	return sess.Save(c.Request(), c.Response())
}

func (srv *Server) logoutSession(c echo.Context) error {
	sess := srv.session(c)
	delete(sess.Values, "user_id")
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

func (srv *Server) addFlash(c echo.Context, category string, message string) {
	sess := srv.session(c)
	sess.AddFlash(message, category)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		zap.S().Warnf("failed to save session: %v", err)
	}
}

func (srv *Server) takeFlashes(c echo.Context, category string) []string {
	sess := srv.session(c)
	raw := sess.Flashes(category)
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		zap.S().Warnf("failed to save session: %v", err)
	}
	messages := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// requireLogin redirects anonymous requests to the login page.
func (srv *Server) requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if srv.currentUser(c) == nil {
			return c.Redirect(http.StatusFound, "/login?next="+c.Request().URL.Path)
		}
		return next(c)
	}
}
