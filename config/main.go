package config

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func Load() {
	if err := godotenv.Load(); err != nil {
		zap.S().Debugf("no .env file found: %v", err)
	}
	if err := LoadEnv(); err != nil {
		zap.S().Fatalf("failed to load environment: %v", err)
	}
}
