package web

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"lurker/cache"
	"lurker/config"
	"lurker/reddit"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFS embed.FS

//go:embed templates/*
var templateFS embed.FS

type Server struct {
	echo   *echo.Echo
	httpd  *http.Server
	client *reddit.Client
	cache  *cache.Cache
	store  *sessions.CookieStore
}

func Start(client *reddit.Client, responseCache *cache.Cache) error {
	cfg := config.Env
	e := echo.New()

	srv := &Server{
		echo:   e,
		client: client,
		cache:  responseCache,
		store:  sessions.NewCookieStore([]byte(cfg.SessionSecret)),
	}
	srv.httpd = &http.Server{
		Handler:        srv,
		Addr:           cfg.Bind,
		WriteTimeout:   time.Minute,
		ReadTimeout:    time.Minute,
		MaxHeaderBytes: 1 << 20,
	}

	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		// don't log requests for static content
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/static")
		},
		Format: "method=${method} path=${uri} status=${status} latency=${latency_human}\n",
	}))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		HSTSMaxAge:         31536000, // 365 days
	}))
	e.Use(middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusFound,
	}))
	e.Renderer = NewRenderer("templates", templateFS, cfg.Debug)
	e.HTTPErrorHandler = srv.errorHandler

	staticHandler := http.FileServer(func() http.FileSystem {
		if cfg.Debug {
			return http.FS(os.DirFS("web/static"))
		}
		fsys, err := fs.Sub(staticFS, "static")
		if err != nil {
			zap.S().Fatalf("failed to load static files: %v", err)
		}
		return http.FS(fsys)
	}())

	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", staticHandler)))
	e.GET("/robots.txt", echo.WrapHandler(staticHandler))
	e.GET("/favicon.ico", echo.WrapHandler(staticHandler))
	e.GET("/_health", srv.HandleHealthCheck)

	// content
	e.GET("/", srv.WebHome)
	e.GET("/r/:name", srv.WebSubreddit)
	e.GET("/r/:subreddit/comments/:post_id", srv.WebComments)
	e.GET("/r/:subreddit/comments/:post_id/share", srv.WebShare)
	e.GET("/u/:username", srv.WebUserProfile)
	e.GET("/search", srv.WebSearch)

	// accounts
	e.GET("/login", srv.WebLogin)
	e.POST("/login", srv.WebLogin)
	e.GET("/register", srv.WebRegister)
	e.POST("/register", srv.WebRegister)
	e.GET("/logout", srv.WebLogout, srv.requireLogin)

	// preferences
	e.GET("/settings", srv.WebSettings, srv.requireLogin)
	e.POST("/settings", srv.WebSettings, srv.requireLogin)
	e.POST("/pin/:subreddit", srv.WebPinSubreddit, srv.requireLogin)
	e.POST("/unpin/:subreddit", srv.WebUnpinSubreddit, srv.requireLogin)
	e.POST("/ban/:subreddit", srv.WebBanSubreddit, srv.requireLogin)

	// JSON API
	e.GET("/api/posts", srv.APIPosts)
	e.GET("/api/comments", srv.APIComments)
	e.GET("/api/subreddit_autocomplete", srv.APISubredditAutocomplete)

	zap.S().Infof("starting server on %s", cfg.Bind)
	go func() {
		if err := srv.httpd.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				zap.S().Errorf("http server shutting down unexpectedly: %v", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zap.S().Infof("received signal %s, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.httpd.Shutdown(shutdownCtx); err != nil {
		return err
	}
	zap.S().Info("graceful shutdown complete")
	return nil
}

func (srv *Server) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	srv.echo.ServeHTTP(rw, req)
}

type GenericStatus struct {
	Daemon  string `json:"daemon"`
	Status  string `json:"status"`
	Message string `json:"msg,omitempty"`
}

func (srv *Server) HandleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, GenericStatus{Status: "ok", Daemon: "lurker"})
}

func (srv *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Server error occurred"
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}
	if code >= 500 {
		zap.S().Warnf("internal error: %v", err)
	}
	data := srv.templateContext(c)
	data["statusCode"] = code
	data["message"] = message
	if renderErr := c.Render(code, "error.html", data); renderErr != nil {
		zap.S().Errorf("failed to render error page: %v", renderErr)
	}
}
