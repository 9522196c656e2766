// Package model describes weather payloads received from the provider.
package model

import "time"

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is a geocoding match.
type Place struct {
	Name    string  `json:"name"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Coordinates returns place coordinates.
func (p Place) Coordinates() Coordinates {
	return Coordinates{Lat: p.Lat, Lon: p.Lon}
}

// Main contains the main measurements of a weather snapshot.
type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

// Condition is a single weather condition entry.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Wind contains wind speed and direction in degrees.
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// Clouds contains cloudiness in percent.
type Clouds struct {
	All int `json:"all"`
}

// Sys contains location related metadata of current conditions.
type Sys struct {
	Country string `json:"country,omitempty"`
	Sunrise int64  `json:"sunrise,omitempty"`
	Sunset  int64  `json:"sunset,omitempty"`
}

// WeatherData is a snapshot of conditions at a timestamp.
// It is used both for current conditions and for forecast intervals.
type WeatherData struct {
	Dt         int64       `json:"dt"`
	Main       Main        `json:"main"`
	Weather    []Condition `json:"weather"`
	Wind       Wind        `json:"wind"`
	Clouds     Clouds      `json:"clouds"`
	Visibility int         `json:"visibility,omitempty"`
	Name       string      `json:"name,omitempty"`
	Coord      Coordinates `json:"coord"`
	Sys        Sys         `json:"sys"`
}

// Time returns the snapshot timestamp.
func (wd *WeatherData) Time() time.Time {
	return time.Unix(wd.Dt, 0).UTC()
}

// Condition returns the primary weather condition.
func (wd *WeatherData) Condition() Condition {
	if len(wd.Weather) == 0 {
		return Condition{}
	}

	return wd.Weather[0]
}

// City contains forecast location metadata.
type City struct {
	Name     string      `json:"name"`
	Country  string      `json:"country"`
	Coord    Coordinates `json:"coord"`
	Timezone int         `json:"timezone"`
}

// ForecastData is an ordered sequence of forecast intervals.
type ForecastData struct {
	List []WeatherData `json:"list"`
	City City          `json:"city"`
}
