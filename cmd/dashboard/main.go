package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/katiamach/weather-dashboard/internal/api"
	"github.com/katiamach/weather-dashboard/internal/config"
	"github.com/katiamach/weather-dashboard/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug(fmt.Sprintf("no .env file loaded: %v", err))
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %w", err))
	}

	err = api.RunAPI(cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run weather dashboard: %w", err))
	}
}
