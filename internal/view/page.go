package view

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katiamach/weather-dashboard/internal/dashboard"
	"github.com/katiamach/weather-dashboard/internal/model"
	"github.com/katiamach/weather-dashboard/internal/provider/openweather"
)

// ForecastTiles is the number of forecast intervals displayed.
const ForecastTiles = 5

// Page is the dashboard view model.
type Page struct {
	Status string
	Error  string
	Search string
	Units  []UnitOption

	Current *Current
	Tiles   []Tile
}

// UnitOption is an entry of the unit selector.
type UnitOption struct {
	Value    string
	Label    string
	Selected bool
}

// Row is a labeled value.
type Row struct {
	Label string
	Value string
}

// Current is the detail view of current conditions.
type Current struct {
	Location    string
	Temperature string
	Description string
	IconURL     string
	Rows        []Row
}

// Tile is a single forecast interval.
type Tile struct {
	Time        string
	Temperature string
	Description string
	IconURL     string
}

// NewPage builds view model from dashboard snapshot.
func NewPage(snap dashboard.Snapshot, iconBaseURL string) *Page {
	p := &Page{
		Status: string(snap.Status),
		Error:  snap.Error,
		Search: snap.Search,
		Units:  unitOptions(snap.Units),
	}

	if snap.Status != dashboard.StatusReady {
		return p
	}

	p.Current = newCurrent(snap, iconBaseURL)
	p.Tiles = newTiles(snap.Forecast, snap.Units, iconBaseURL)

	return p
}

// FormatTemperature rounds temperature and appends unit suffix.
func FormatTemperature(v float64, units model.Units) string {
	return fmt.Sprintf("%d%s", model.Round(v), units.TemperatureSuffix())
}

func unitOptions(selected model.Units) []UnitOption {
	return []UnitOption{
		{Value: string(model.Metric), Label: "Metric (" + model.Metric.TemperatureSuffix() + ")", Selected: selected == model.Metric},
		{Value: string(model.Imperial), Label: "Imperial (" + model.Imperial.TemperatureSuffix() + ")", Selected: selected == model.Imperial},
	}
}

func newCurrent(snap dashboard.Snapshot, iconBaseURL string) *Current {
	wd := snap.Weather
	cond := wd.Condition()

	location := wd.Name
	if location == "" {
		location = snap.Forecast.City.Name
	}
	if wd.Sys.Country != "" {
		location += ", " + wd.Sys.Country
	}

	return &Current{
		Location:    location,
		Temperature: FormatTemperature(wd.Main.Temp, snap.Units),
		Description: describe(cond.Description),
		IconURL:     openweather.IconURL(iconBaseURL, cond.Icon, openweather.DetailIcon),
		Rows: []Row{
			{Label: "Feels like", Value: FormatTemperature(wd.Main.FeelsLike, snap.Units)},
			{Label: "Humidity", Value: fmt.Sprintf("%d%%", model.Round(wd.Main.Humidity))},
			{Label: "Pressure", Value: fmt.Sprintf("%d hPa", model.Round(wd.Main.Pressure))},
			{Label: "Wind", Value: fmt.Sprintf("%.1f %s, %d°", wd.Wind.Speed, snap.Units.SpeedSuffix(), model.Round(wd.Wind.Deg))},
			{Label: "Station distance", Value: fmt.Sprintf("%.1f km", snap.DistanceKm)},
		},
	}
}

func newTiles(fd *model.ForecastData, units model.Units, iconBaseURL string) []Tile {
	n := len(fd.List)
	if n > ForecastTiles {
		n = ForecastTiles
	}

	zone := time.FixedZone(fd.City.Name, fd.City.Timezone)

	tiles := make([]Tile, 0, n)
	for i := 0; i < n; i++ {
		entry := fd.List[i]
		cond := entry.Condition()

		tiles = append(tiles, Tile{
			Time:        entry.Time().In(zone).Format("Mon 15:04"),
			Temperature: FormatTemperature(entry.Main.Temp, units),
			Description: describe(cond.Description),
			IconURL:     openweather.IconURL(iconBaseURL, cond.Icon, openweather.TileIcon),
		})
	}

	return tiles
}

// describe title-cases provider description, e.g. "light rain" to "Light Rain".
func describe(s string) string {
	return cases.Title(language.English).String(s)
}
