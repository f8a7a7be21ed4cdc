package config

import (
	"os"
	"strconv"
	"time"

	"lurker/models"

	"go.uber.org/zap"
)

var Env = GetDefaultConfig()

func LoadEnv() error {
	if value := os.Getenv("BIND"); value != "" {
		Env.Bind = value
	} else {
		zap.S().Warnf("BIND is not set, using default %s", Env.Bind)
	}
	if value := os.Getenv("DB_PATH"); value != "" {
		Env.DBPath = value
	} else {
		zap.S().Warnf("DB_PATH is not set, using default %s", Env.DBPath)
	}
	if value := os.Getenv("CACHE_PATH"); value != "" {
		Env.CachePath = value
	}
	if value := os.Getenv("CACHE_ITEMS"); value != "" {
		if items, err := strconv.Atoi(value); err == nil {
			Env.CacheItems = items
		} else {
			zap.S().Fatal("CACHE_ITEMS env is not a valid integer")
		}
	}
	if value := os.Getenv("API_BASE_URL"); value != "" {
		Env.APIBaseURL = value
	}
	if value := os.Getenv("USER_AGENT"); value != "" {
		Env.UserAgent = value
	}
	if value := os.Getenv("SESSION_SECRET"); value != "" {
		Env.SessionSecret = value
	} else {
		zap.S().Fatal("SESSION_SECRET env is not set")
	}
	if value := os.Getenv("DEBUG"); value != "" {
		if debug, err := strconv.ParseBool(value); err == nil {
			Env.Debug = debug
		} else {
			zap.S().Fatal("DEBUG env is not a valid boolean")
		}
	}
	if value := os.Getenv("DEFAULT_SORT"); value != "" {
		Env.DefaultSort = value
	}
	if value := os.Getenv("DEFAULT_POST_LIMIT"); value != "" {
		if limit, err := strconv.Atoi(value); err == nil {
			Env.DefaultPostLimit = limit
		} else {
			zap.S().Fatal("DEFAULT_POST_LIMIT env is not a valid integer")
		}
	}
	if value := os.Getenv("TOP_COMMENTS_PER_POST"); value != "" {
		if limit, err := strconv.Atoi(value); err == nil {
			Env.TopCommentsPerPost = limit
		}
	}
	if value := os.Getenv("TOP_COMMENTS_FETCH_LIMIT"); value != "" {
		if limit, err := strconv.Atoi(value); err == nil {
			Env.TopCommentsFetchLimit = limit
		}
	}
	if value := os.Getenv("SUBREDDIT_CACHE_TTL"); value != "" {
		if ttl, err := time.ParseDuration(value); err == nil {
			Env.SubredditCacheTTL = ttl
		} else {
			zap.S().Fatalf("SUBREDDIT_CACHE_TTL env is not a valid duration: %v", err)
		}
	}
	if value := os.Getenv("COMMENTS_CACHE_TTL"); value != "" {
		if ttl, err := time.ParseDuration(value); err == nil {
			Env.CommentsCacheTTL = ttl
		} else {
			zap.S().Fatalf("COMMENTS_CACHE_TTL env is not a valid duration: %v", err)
		}
	}
	if value := os.Getenv("AUTOCOMPLETE_CACHE_TTL"); value != "" {
		if ttl, err := time.ParseDuration(value); err == nil {
			Env.AutocompleteCacheTTL = ttl
		}
	}
	if value := os.Getenv("REQUEST_TIMEOUT"); value != "" {
		if timeout, err := time.ParseDuration(value); err == nil {
			Env.RequestTimeout = timeout
		} else {
			zap.S().Fatalf("REQUEST_TIMEOUT env is not a valid duration: %v", err)
		}
	}
	if value := os.Getenv("RATE_LIMIT_DELAY"); value != "" {
		if delay, err := time.ParseDuration(value); err == nil {
			Env.RateLimitDelay = delay
		}
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		Env.LogLevel = value
	}
	return nil
}

func GetDefaultConfig() *models.EnvConfig {
	return &models.EnvConfig{
		Bind:       ":8200",
		DBPath:     "lurker.db",
		CachePath:  ".cache",
		CacheItems: 512,

		APIBaseURL: "https://reddit.com",
		UserAgent:  "lurker/1.0 (reddit json reader)",

		DefaultSort:      "hot",
		DefaultPostLimit: 25,

		TopCommentsPerPost:    3,
		TopCommentsFetchLimit: 50,

		SubredditCacheTTL:    5 * time.Minute,
		CommentsCacheTTL:     30 * time.Minute,
		AutocompleteCacheTTL: time.Minute,

		RequestTimeout: 10 * time.Second,
		RateLimitDelay: 350 * time.Millisecond,

		LogLevel: "info",
	}
}
