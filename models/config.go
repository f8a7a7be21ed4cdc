package models

import "time"

type EnvConfig struct {
	Bind       string
	DBPath     string
	CachePath  string
	CacheItems int

	APIBaseURL string
	UserAgent  string

	SessionSecret string
	Debug         bool

	DefaultSort      string
	DefaultPostLimit int

	TopCommentsPerPost    int
	TopCommentsFetchLimit int

	SubredditCacheTTL    time.Duration
	CommentsCacheTTL     time.Duration
	AutocompleteCacheTTL time.Duration

	RequestTimeout time.Duration
	RateLimitDelay time.Duration

	LogLevel string
}
