// Package dashboard holds dashboard state and the rules selecting what is displayed.
package dashboard

import "github.com/katiamach/weather-dashboard/internal/model"

// Status is the displayed dashboard state.
type Status string

// Dashboard statuses.
const (
	StatusEmpty   Status = "empty"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

// State contains all dashboard fields.
type State struct {
	Weather    *model.WeatherData
	Forecast   *model.ForecastData
	DistanceKm float64
	Search     string
	Units      model.Units
	Loading    bool
	Error      string

	// Generation is the latest issued fetch attempt.
	Generation uint64
}

// Initial returns state of a freshly opened dashboard.
func Initial(units model.Units) State {
	return State{Units: units}
}

// Event changes dashboard state.
type Event interface {
	apply(State) State
}

// FetchStarted marks the beginning of attempt Generation.
type FetchStarted struct {
	Generation uint64
}

func (e FetchStarted) apply(s State) State {
	if e.Generation <= s.Generation {
		return s
	}

	s.Generation = e.Generation
	s.Loading = true
	return s
}

// FetchSucceeded replaces weather and forecast together.
type FetchSucceeded struct {
	Generation uint64
	Weather    *model.WeatherData
	Forecast   *model.ForecastData
	DistanceKm float64
}

func (e FetchSucceeded) apply(s State) State {
	if e.Generation != s.Generation {
		return s
	}

	s.Weather = e.Weather
	s.Forecast = e.Forecast
	s.DistanceKm = e.DistanceKm
	s.Loading = false
	s.Error = ""
	return s
}

// FetchFailed ends attempt Generation with a user visible message.
// Previously received data is kept.
type FetchFailed struct {
	Generation uint64
	Message    string
}

func (e FetchFailed) apply(s State) State {
	if e.Generation != s.Generation {
		return s
	}

	s.Loading = false
	s.Error = e.Message
	return s
}

// SearchChanged updates search text.
type SearchChanged struct {
	Text string
}

func (e SearchChanged) apply(s State) State {
	s.Search = e.Text
	return s
}

// UnitsChanged switches unit system. Data is not converted.
type UnitsChanged struct {
	Units model.Units
}

func (e UnitsChanged) apply(s State) State {
	s.Units = e.Units
	return s
}

// Reduce applies event to state.
func Reduce(s State, e Event) State {
	if e == nil {
		return s
	}

	return e.apply(s)
}

// Snapshot is the selected view of a dashboard.
type Snapshot struct {
	Status     Status              `json:"status"`
	Error      string              `json:"error,omitempty"`
	Units      model.Units         `json:"units"`
	Search     string              `json:"search"`
	Weather    *model.WeatherData  `json:"weather,omitempty"`
	Forecast   *model.ForecastData `json:"forecast,omitempty"`
	DistanceKm float64             `json:"distanceKm,omitempty"`
}

// Select derives displayed snapshot.
// Loading wins over error, error wins over data.
func Select(s State) Snapshot {
	snap := Snapshot{
		Units:  s.Units,
		Search: s.Search,
	}

	switch {
	case s.Loading:
		snap.Status = StatusLoading
	case s.Error != "":
		snap.Status = StatusError
		snap.Error = s.Error
	case s.Weather != nil && s.Forecast != nil:
		snap.Status = StatusReady
		snap.Weather = s.Weather
		snap.Forecast = s.Forecast
		snap.DistanceKm = s.DistanceKm
	default:
		snap.Status = StatusEmpty
	}

	return snap
}
