// Package openweather is a client for the OpenWeatherMap geocoding, current weather and forecast APIs.
package openweather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/katiamach/weather-dashboard/internal/logger"
	"github.com/katiamach/weather-dashboard/internal/model"
)

// Provider errors.
var (
	ErrUnexpectedStatus = errors.New("provider returned unexpected status")
	ErrMalformedPayload = errors.New("provider returned malformed payload")
)

// Options configures the client.
type Options struct {
	APIKey        string
	WeatherAPIURL string
	GeoAPIURL     string
	Timeout       time.Duration
}

// Client talks to OpenWeatherMap.
type Client struct {
	apiKey     string
	weatherURL string
	geoURL     string
	httpClient *http.Client
}

// New creates new Client.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		apiKey:     opts.APIKey,
		weatherURL: opts.WeatherAPIURL,
		geoURL:     opts.GeoAPIURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Geocode looks up places matching the free text query, returning at most limit matches.
func (c *Client) Geocode(ctx context.Context, query string, limit int) ([]model.Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	var places []model.Place
	if err := c.get(ctx, c.geoURL+"/direct", params, &places); err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	return places, nil
}

// CurrentWeather gets current conditions at the given coordinates.
func (c *Client) CurrentWeather(ctx context.Context, coords model.Coordinates, units model.Units) (*model.WeatherData, error) {
	wd := new(model.WeatherData)
	if err := c.get(ctx, c.weatherURL+"/weather", weatherParams(coords, units), wd); err != nil {
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	if len(wd.Weather) == 0 {
		return nil, fmt.Errorf("current weather without conditions: %w", ErrMalformedPayload)
	}

	return wd, nil
}

// Forecast gets forecast intervals at the given coordinates.
func (c *Client) Forecast(ctx context.Context, coords model.Coordinates, units model.Units) (*model.ForecastData, error) {
	fd := new(model.ForecastData)
	if err := c.get(ctx, c.weatherURL+"/forecast", weatherParams(coords, units), fd); err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	for i := range fd.List {
		if len(fd.List[i].Weather) == 0 {
			return nil, fmt.Errorf("forecast interval %d without conditions: %w", i, ErrMalformedPayload)
		}
	}

	return fd, nil
}

func weatherParams(coords model.Coordinates, units model.Units) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	params.Set("units", string(units))

	return params
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, dst interface{}) error {
	// credential is added here so it never reaches the logs
	logger.WithFields(logrus.Fields{"endpoint": endpoint, "query": params.Encode()}).Debug("provider request")

	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return nil
}
