package web

import (
	"errors"
	"net/http"
	"strings"

	"lurker/database"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (srv *Server) WebLogin(c echo.Context) error {
	if srv.currentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	if c.Request().Method == http.MethodPost {
		username := strings.TrimSpace(c.FormValue("username"))
		password := c.FormValue("password")
		remember := c.FormValue("remember") != ""

		if username == "" || password == "" {
			srv.addFlash(c, "error", "Please fill in all fields.")
			return c.Redirect(http.StatusFound, "/login")
		}

		user, err := database.GetUserByUsername(username)
		if err == nil && database.CheckPassword(user, password) {
			if err := srv.loginSession(c, user, remember); err != nil {
				zap.S().Errorf("failed to save session: %v", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
			}
			next := c.QueryParam("next")
			if next == "" || !strings.HasPrefix(next, "/") {
				next = "/"
			}
			return c.Redirect(http.StatusFound, next)
		}

		srv.addFlash(c, "error", "Invalid username or password.")
		return c.Redirect(http.StatusFound, "/login")
	}

	return c.Render(http.StatusOK, "login.html", srv.templateContext(c))
}

func (srv *Server) WebRegister(c echo.Context) error {
	if srv.currentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	if c.Request().Method == http.MethodPost {
		username := strings.TrimSpace(c.FormValue("username"))
		password := c.FormValue("password")
		confirm := c.FormValue("confirm")

		if message := validateRegistration(username, password, confirm); message != "" {
			srv.addFlash(c, "error", message)
			return c.Redirect(http.StatusFound, "/register")
		}

		if _, err := database.CreateUser(username, password); err != nil {
			if errors.Is(err, database.ErrUsernameTaken) {
				srv.addFlash(c, "error", "Username already exists.")
			} else {
				zap.S().Errorf("failed to create user: %v", err)
				srv.addFlash(c, "error", "Could not create account.")
			}
			return c.Redirect(http.StatusFound, "/register")
		}

		srv.addFlash(c, "success", "Account created! Please log in.")
		return c.Redirect(http.StatusFound, "/login")
	}

	return c.Render(http.StatusOK, "register.html", srv.templateContext(c))
}

func validateRegistration(username string, password string, confirm string) string {
	switch {
	case username == "" || password == "":
		return "Please fill in all fields."
	case len(username) < 3:
		return "Username must be at least 3 characters."
	case len(password) < 6:
		return "Password must be at least 6 characters."
	case password != confirm:
		return "Passwords do not match."
	}
	return ""
}

func (srv *Server) WebLogout(c echo.Context) error {
	if err := srv.logoutSession(c); err != nil {
		zap.S().Warnf("failed to clear session: %v", err)
	}
	return c.Redirect(http.StatusFound, "/")
}
