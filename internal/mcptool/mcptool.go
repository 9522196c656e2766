// Package mcptool exposes the city search flow as an MCP tool.
package mcptool

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/miyamo2/qilin"
	"github.com/sirupsen/logrus"

	"github.com/katiamach/weather-dashboard/internal/dashboard"
	"github.com/katiamach/weather-dashboard/internal/geolocation"
	"github.com/katiamach/weather-dashboard/internal/logger"
	"github.com/katiamach/weather-dashboard/internal/model"
	"github.com/katiamach/weather-dashboard/internal/service"
)

// CityWeatherToolName is the registered tool name.
const CityWeatherToolName = "city_weather"

// CityWeatherRequest contains input parameters for the city_weather tool.
type CityWeatherRequest struct {
	City  string `json:"city" jsonschema:"title=City,description=City name optionally followed by state and country code"`
	Units string `json:"units,omitempty" jsonschema:"title=Units,enum=metric,enum=imperial"`
}

// CityWeather serves the city_weather tool.
type CityWeather struct {
	geocoder     service.Geocoder
	weather      service.WeatherClient
	defaultUnits model.Units
}

// NewCityWeather creates new CityWeather.
func NewCityWeather(geocoder service.Geocoder, weather service.WeatherClient, defaultUnits model.Units) *CityWeather {
	return &CityWeather{
		geocoder:     geocoder,
		weather:      weather,
		defaultUnits: defaultUnits,
	}
}

// Register adds the tool to q.
func (t *CityWeather) Register(q *qilin.Qilin) {
	q.Tool(CityWeatherToolName,
		(*CityWeatherRequest)(nil),
		t.Handle,
		qilin.ToolWithDescription("Current weather and the next forecast intervals for a city"),
		qilin.ToolWithMiddleware(logCalls))
}

// Handle is the qilin handler of the tool.
func (t *CityWeather) Handle(c qilin.ToolContext) error {
	var req CityWeatherRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	snap, err := t.Lookup(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(snap)
}

// Lookup runs a search on a fresh dashboard.
// Failed attempts are reported with their user-visible message.
func (t *CityWeather) Lookup(ctx context.Context, req CityWeatherRequest) (dashboard.Snapshot, error) {
	units := t.defaultUnits
	if req.Units != "" {
		var err error
		if units, err = model.ParseUnits(req.Units); err != nil {
			return dashboard.Snapshot{}, err
		}
	}

	d := service.New(t.geocoder, t.weather, geolocation.Denied{}, units)

	snap, err := d.Search(ctx, req.City)
	if errors.Is(err, service.ErrEmptyQuery) {
		return dashboard.Snapshot{}, err
	}
	if err != nil {
		return dashboard.Snapshot{}, errors.New(snap.Error)
	}

	return snap, nil
}

func logCalls(next qilin.ToolHandlerFunc) qilin.ToolHandlerFunc {
	return func(c qilin.ToolContext) error {
		start := time.Now()
		err := next(c)

		entry := logger.WithFields(logrus.Fields{
			"tool":     c.ToolName(),
			"duration": time.Since(start).String(),
		})
		if err != nil {
			entry.WithError(err).Warn("tool call failed")
		} else {
			entry.Info("tool call served")
		}

		return err
	}
}
