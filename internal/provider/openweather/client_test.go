package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/tj/assert"

	"github.com/katiamach/weather-dashboard/internal/model"
)

const currentPayload = `{
	"coord": {"lon": 13.41, "lat": 52.52},
	"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
	"main": {"temp": 21.6, "feels_like": 20.9, "temp_min": 19.1, "temp_max": 23.2, "pressure": 1012, "humidity": 64},
	"visibility": 10000,
	"wind": {"speed": 3.6, "deg": 240},
	"clouds": {"all": 75},
	"dt": 1700000000,
	"sys": {"country": "DE", "sunrise": 1699990000, "sunset": 1700020000},
	"name": "Berlin"
}`

const forecastPayload = `{
	"list": [
		{"dt": 1700010800, "main": {"temp": 20.1}, "weather": [{"description": "clear sky", "icon": "01d"}], "wind": {"speed": 2}},
		{"dt": 1700021600, "main": {"temp": 18.4}, "weather": [{"description": "few clouds", "icon": "02n"}], "wind": {"speed": 1.5}}
	],
	"city": {"name": "Berlin", "country": "DE", "coord": {"lat": 52.52, "lon": 13.41}, "timezone": 3600}
}`

type recorded struct {
	path  string
	query url.Values
}

func newTestServer(t *testing.T, status int, payloads map[string]string) (*Client, *[]recorded) {
	t.Helper()

	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, recorded{path: r.URL.Path, query: r.URL.Query()})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payloads[r.URL.Path]))
	}))
	t.Cleanup(srv.Close)

	c := New(Options{
		APIKey:        "key",
		WeatherAPIURL: srv.URL + "/data/2.5",
		GeoAPIURL:     srv.URL + "/geo/1.0",
	})

	return c, &calls
}

func TestCurrentWeather(t *testing.T) {
	c, calls := newTestServer(t, http.StatusOK, map[string]string{"/data/2.5/weather": currentPayload})

	wd, err := c.CurrentWeather(context.Background(), model.Coordinates{Lat: 52.52, Lon: 13.405}, model.Metric)
	assert.Nil(t, err)

	assert.Len(t, *calls, 1)
	q := (*calls)[0].query
	assert.Equal(t, "52.52", q.Get("lat"))
	assert.Equal(t, "13.405", q.Get("lon"))
	assert.Equal(t, "metric", q.Get("units"))
	assert.Equal(t, "key", q.Get("appid"))

	assert.Equal(t, "Berlin", wd.Name)
	assert.Equal(t, 21.6, wd.Main.Temp)
	assert.Equal(t, 20.9, wd.Main.FeelsLike)
	assert.Equal(t, 64.0, wd.Main.Humidity)
	assert.Equal(t, "10d", wd.Condition().Icon)
	assert.Equal(t, 240.0, wd.Wind.Deg)
	assert.Equal(t, int64(1700000000), wd.Dt)
}

func TestCurrentWeatherWithoutConditions(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, map[string]string{"/data/2.5/weather": `{"main": {"temp": 1}, "weather": []}`})

	_, err := c.CurrentWeather(context.Background(), model.Coordinates{}, model.Metric)
	assert.True(t, errors.Is(err, ErrMalformedPayload))
}

func TestForecast(t *testing.T) {
	c, calls := newTestServer(t, http.StatusOK, map[string]string{"/data/2.5/forecast": forecastPayload})

	fd, err := c.Forecast(context.Background(), model.Coordinates{Lat: 1.5, Lon: -2.25}, model.Imperial)
	assert.Nil(t, err)

	q := (*calls)[0].query
	assert.Equal(t, "1.5", q.Get("lat"))
	assert.Equal(t, "-2.25", q.Get("lon"))
	assert.Equal(t, "imperial", q.Get("units"))

	assert.Equal(t, "Berlin", fd.City.Name)
	assert.Equal(t, "DE", fd.City.Country)
	assert.Len(t, fd.List, 2)
	assert.Equal(t, "clear sky", fd.List[0].Condition().Description)
	assert.Equal(t, "02n", fd.List[1].Condition().Icon)
}

func TestGeocode(t *testing.T) {
	c, calls := newTestServer(t, http.StatusOK, map[string]string{
		"/geo/1.0/direct": `[{"name": "Paris", "lat": 48.85, "lon": 2.35, "country": "FR", "state": "Ile-de-France"}]`,
	})

	places, err := c.Geocode(context.Background(), "Paris", 1)
	assert.Nil(t, err)

	q := (*calls)[0].query
	assert.Equal(t, "Paris", q.Get("q"))
	assert.Equal(t, "1", q.Get("limit"))

	assert.Len(t, places, 1)
	assert.Equal(t, model.Coordinates{Lat: 48.85, Lon: 2.35}, places[0].Coordinates())
}

func TestGeocodeNoMatches(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, map[string]string{"/geo/1.0/direct": `[]`})

	places, err := c.Geocode(context.Background(), "Nowhereville", 1)
	assert.Nil(t, err)
	assert.Len(t, places, 0)
}

func TestProviderErrors(t *testing.T) {
	t.Run("non 200 status", func(t *testing.T) {
		c, _ := newTestServer(t, http.StatusUnauthorized, map[string]string{"/data/2.5/weather": `{"cod": 401}`})

		_, err := c.CurrentWeather(context.Background(), model.Coordinates{}, model.Metric)
		assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	})

	t.Run("undecodable body", func(t *testing.T) {
		c, _ := newTestServer(t, http.StatusOK, map[string]string{"/geo/1.0/direct": `{not json`})

		_, err := c.Geocode(context.Background(), "x", 1)
		assert.True(t, errors.Is(err, ErrMalformedPayload))
	})

	t.Run("forecast interval without conditions", func(t *testing.T) {
		c, _ := newTestServer(t, http.StatusOK, map[string]string{"/data/2.5/forecast": `{"list": [{"dt": 1}], "city": {}}`})

		_, err := c.Forecast(context.Background(), model.Coordinates{}, model.Metric)
		assert.True(t, errors.Is(err, ErrMalformedPayload))
	})

	t.Run("unreachable", func(t *testing.T) {
		c := New(Options{WeatherAPIURL: "http://127.0.0.1:0"})

		_, err := c.CurrentWeather(context.Background(), model.Coordinates{}, model.Metric)
		assert.NotNil(t, err)
	})
}

func TestIconURL(t *testing.T) {
	assert.Equal(t, "https://img.test/10d@4x.png", IconURL("https://img.test", "10d", DetailIcon))
	assert.Equal(t, "https://img.test/10d@2x.png", IconURL("https://img.test", "10d", TileIcon))
	assert.Equal(t, "", IconURL("https://img.test", "", TileIcon))
}
