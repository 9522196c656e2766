package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/umahmood/haversine"
	"golang.org/x/sync/errgroup"

	"github.com/katiamach/weather-dashboard/internal/dashboard"
	"github.com/katiamach/weather-dashboard/internal/geolocation"
	"github.com/katiamach/weather-dashboard/internal/logger"
	"github.com/katiamach/weather-dashboard/internal/model"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go

// Messages of these errors are displayed to the user as is.
var (
	ErrGeolocation      = errors.New("unable to retrieve your location, please search for a city instead")
	ErrLocationNotFound = errors.New("location not found")
	ErrLookupFailed     = errors.New("failed to look up location, please try again")
	ErrFetchFailed      = errors.New("failed to fetch weather data, please try again")
)

// ErrEmptyQuery is returned for blank search queries.
var ErrEmptyQuery = errors.New("search query should not be empty")

// Geocoder resolves free text place names.
type Geocoder interface {
	Geocode(ctx context.Context, query string, limit int) ([]model.Place, error)
}

// WeatherClient provides current conditions and forecast.
type WeatherClient interface {
	CurrentWeather(ctx context.Context, coords model.Coordinates, units model.Units) (*model.WeatherData, error)
	Forecast(ctx context.Context, coords model.Coordinates, units model.Units) (*model.ForecastData, error)
}

// Dashboard resolves a location and loads its weather into dashboard state.
type Dashboard struct {
	geocoder Geocoder
	weather  WeatherClient
	store    *dashboard.Store

	mu      sync.Mutex
	locator geolocation.Locator
}

// New creates new Dashboard. Locator is used for geolocation until the browser reports its own reading.
func New(geocoder Geocoder, weather WeatherClient, locator geolocation.Locator, units model.Units) *Dashboard {
	return &Dashboard{
		geocoder: geocoder,
		weather:  weather,
		store:    dashboard.NewStore(dashboard.Initial(units)),
		locator:  locator,
	}
}

// Snapshot returns displayed dashboard state.
func (d *Dashboard) Snapshot() dashboard.Snapshot {
	return d.store.Snapshot()
}

// Locate loads weather for the geolocated position.
// A non nil locator replaces the one used by later unit changes.
func (d *Dashboard) Locate(ctx context.Context, locator geolocation.Locator) (dashboard.Snapshot, error) {
	if locator != nil {
		d.mu.Lock()
		d.locator = locator
		d.mu.Unlock()
	}

	err := d.locate(ctx)
	return d.store.Snapshot(), err
}

// Search loads weather for the best match of a typed location.
func (d *Dashboard) Search(ctx context.Context, query string) (dashboard.Snapshot, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return d.store.Snapshot(), ErrEmptyQuery
	}

	d.store.Dispatch(dashboard.SearchChanged{Text: query})

	gen := d.store.Begin()
	log := logger.WithFields(logrus.Fields{"generation": gen, "query": query})

	places, err := d.geocoder.Geocode(ctx, query, 1)
	if err != nil {
		log.WithError(err).Warn("location lookup failed")
		return d.fail(gen, ErrLookupFailed, err)
	}

	if len(places) == 0 {
		log.Info("location not found")
		return d.fail(gen, ErrLocationNotFound, nil)
	}

	err = d.fetch(ctx, gen, places[0].Coordinates())
	return d.store.Snapshot(), err
}

// SetUnits switches unit system and reloads weather for the geolocated position.
// Values are always fetched again in the new units.
func (d *Dashboard) SetUnits(ctx context.Context, units model.Units) (dashboard.Snapshot, error) {
	if _, err := model.ParseUnits(string(units)); err != nil {
		return d.store.Snapshot(), err
	}

	d.store.Dispatch(dashboard.UnitsChanged{Units: units})

	err := d.locate(ctx)
	return d.store.Snapshot(), err
}

func (d *Dashboard) locate(ctx context.Context) error {
	gen := d.store.Begin()

	d.mu.Lock()
	locator := d.locator
	d.mu.Unlock()

	if locator == nil {
		_, err := d.fail(gen, ErrGeolocation, nil)
		return err
	}

	coords, err := locator.Locate(ctx)
	if err != nil {
		logger.WithFields(logrus.Fields{"generation": gen}).WithError(err).Warn("geolocation failed")
		_, err = d.fail(gen, ErrGeolocation, err)
		return err
	}

	return d.fetch(ctx, gen, coords)
}

// fetch loads current conditions and forecast in parallel and applies both or neither.
func (d *Dashboard) fetch(ctx context.Context, gen uint64, coords model.Coordinates) error {
	units := d.store.State().Units

	var (
		current  *model.WeatherData
		forecast *model.ForecastData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = d.weather.CurrentWeather(gctx, coords, units)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = d.weather.Forecast(gctx, coords, units)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.WithFields(logrus.Fields{
			"generation": gen,
			"lat":        coords.Lat,
			"lon":        coords.Lon,
			"units":      units,
		}).WithError(err).Warn("weather fetch failed")

		_, err = d.fail(gen, ErrFetchFailed, err)
		return err
	}

	_, km := haversine.Distance(
		haversine.Coord{Lat: coords.Lat, Lon: coords.Lon},
		haversine.Coord{Lat: current.Coord.Lat, Lon: current.Coord.Lon},
	)

	d.store.Dispatch(dashboard.FetchSucceeded{
		Generation: gen,
		Weather:    current,
		Forecast:   forecast,
		DistanceKm: km,
	})

	return nil
}

func (d *Dashboard) fail(gen uint64, userErr, cause error) (dashboard.Snapshot, error) {
	d.store.Dispatch(dashboard.FetchFailed{Generation: gen, Message: userErr.Error()})

	if cause == nil {
		return d.store.Snapshot(), userErr
	}

	return d.store.Snapshot(), fmt.Errorf("%w: %w", userErr, cause)
}
