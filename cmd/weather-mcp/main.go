package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/miyamo2/qilin"

	"github.com/katiamach/weather-dashboard/internal/config"
	"github.com/katiamach/weather-dashboard/internal/logger"
	"github.com/katiamach/weather-dashboard/internal/mcptool"
	"github.com/katiamach/weather-dashboard/internal/provider/openweather"
)

func main() {
	// stdout carries the protocol
	logger.SetOutput(os.Stderr)

	if err := godotenv.Load(); err != nil {
		logger.Debug(fmt.Sprintf("no .env file loaded: %v", err))
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %w", err))
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatal(fmt.Errorf("failed to set log level: %w", err))
	}

	client := openweather.New(openweather.Options{
		APIKey:        cfg.APIKey,
		WeatherAPIURL: cfg.WeatherAPIURL,
		GeoAPIURL:     cfg.GeoAPIURL,
		Timeout:       cfg.HTTPTimeout,
	})

	q := qilin.New("weather-dashboard")
	mcptool.NewCityWeather(client, client, cfg.DefaultUnits).Register(q)

	if err := q.Start(); err != nil {
		logger.Fatal(fmt.Errorf("failed to run mcp server: %w", err))
	}
}
