// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katiamach/weather-dashboard/internal/model"
)

// ErrMissingAPIKey is returned when no provider credential is configured.
var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is not set")

// Config holds application settings.
type Config struct {
	Port     string
	Origin   string
	LogLevel string

	APIKey        string
	WeatherAPIURL string
	GeoAPIURL     string
	IconBaseURL   string
	IPLocatorURL  string
	HTTPTimeout   time.Duration

	DefaultUnits model.Units

	RateLimitRPS   float64
	RateLimitBurst int

	// SessionIdleTTL is how long an untouched dashboard session is kept.
	SessionIdleTTL time.Duration
}

// LoadFromEnv reads configuration from environment variables, applying defaults.
func LoadFromEnv() (Config, error) {
	apiKey := getEnv("OPENWEATHER_API_KEY", "")
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	units, err := model.ParseUnits(getEnv("DEFAULT_UNITS", string(model.Metric)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DEFAULT_UNITS: %w", err)
	}

	timeout, err := parseDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	idleTTL, err := parseDuration("SESSION_IDLE_TTL", "30m")
	if err != nil {
		return Config{}, err
	}

	rpsStr := getEnv("RATE_LIMIT_RPS", "5")
	rps, err := strconv.ParseFloat(rpsStr, 64)
	if err != nil || rps <= 0 {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS %q", rpsStr)
	}

	burstStr := getEnv("RATE_LIMIT_BURST", "10")
	burst, err := strconv.Atoi(burstStr)
	if err != nil || burst < 1 {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_BURST %q", burstStr)
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		Origin:         getEnv("ORIGIN", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		APIKey:         apiKey,
		WeatherAPIURL:  strings.TrimRight(getEnv("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5"), "/"),
		GeoAPIURL:      strings.TrimRight(getEnv("GEO_API_URL", "https://api.openweathermap.org/geo/1.0"), "/"),
		IconBaseURL:    strings.TrimRight(getEnv("ICON_BASE_URL", "https://openweathermap.org/img/wn"), "/"),
		IPLocatorURL:   strings.TrimRight(getEnv("IP_LOCATOR_URL", "http://ip-api.com/json"), "/"),
		HTTPTimeout:    timeout,
		DefaultUnits:   units,
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
		SessionIdleTTL: idleTTL,
	}, nil
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func parseDuration(key, fallback string) (time.Duration, error) {
	s := getEnv(key, fallback)
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: should be positive", key, s)
	}

	return d, nil
}
