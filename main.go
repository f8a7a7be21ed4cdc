package main

import (
	"lurker/cache"
	"lurker/config"
	"lurker/database"
	"lurker/logger"
	"lurker/reddit"
	"lurker/web"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// load environment variables
	config.Load()
	logger.SetLevel(config.Env.LogLevel)

	// setup database
	if err := database.Start(config.Env.DBPath); err != nil {
		zap.S().Fatalf("failed to start database: %v", err)
	}

	// setup response cache
	responseCache, err := cache.New(config.Env.CachePath, config.Env.CacheItems)
	if err != nil {
		zap.S().Fatalf("failed to open cache: %v", err)
	}
	defer responseCache.Close()

	client := reddit.NewClient(
		config.Env.APIBaseURL,
		config.Env.UserAgent,
		config.Env.RequestTimeout,
	)

	if err := web.Start(client, responseCache); err != nil {
		zap.S().Fatalf("server error: %v", err)
	}
}
