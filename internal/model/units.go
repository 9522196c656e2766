package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownUnits is returned for unit systems other than metric and imperial.
var ErrUnknownUnits = errors.New("units should be either metric or imperial")

// Units is a measurement unit system.
type Units string

// Supported unit systems.
const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// ParseUnits parses unit system name.
func ParseUnits(s string) (Units, error) {
	switch Units(strings.ToLower(strings.TrimSpace(s))) {
	case Metric:
		return Metric, nil
	case Imperial:
		return Imperial, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownUnits)
	}
}

// TemperatureSuffix returns temperature unit label.
func (u Units) TemperatureSuffix() string {
	if u == Imperial {
		return "°F"
	}

	return "°C"
}

// SpeedSuffix returns wind speed unit label.
func (u Units) SpeedSuffix() string {
	if u == Imperial {
		return "mph"
	}

	return "m/s"
}

// Round rounds half toward positive infinity, so 2.5 is 3 and -2.5 is -2.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}
