// Package geolocation resolves the user's position without a typed query.
package geolocation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/katiamach/weather-dashboard/internal/model"
)

// Geolocation errors.
var (
	ErrPermissionDenied = errors.New("geolocation permission denied")
	ErrUnavailable      = errors.New("geolocation unavailable")
)

// Locator resolves current position.
type Locator interface {
	Locate(ctx context.Context) (model.Coordinates, error)
}

// Fixed is a position reported by the browser.
type Fixed model.Coordinates

// Locate returns reported coordinates.
func (f Fixed) Locate(context.Context) (model.Coordinates, error) {
	return model.Coordinates(f), nil
}

// Denied is a failed browser geolocation reading.
type Denied struct {
	// Reason is the browser supplied failure description.
	Reason string
	// PermissionDenied distinguishes a refused permission prompt from an unavailable position.
	PermissionDenied bool
}

// Locate always fails.
func (d Denied) Locate(context.Context) (model.Coordinates, error) {
	err := ErrUnavailable
	if d.PermissionDenied {
		err = ErrPermissionDenied
	}

	if d.Reason == "" {
		return model.Coordinates{}, err
	}

	return model.Coordinates{}, fmt.Errorf("%w: %s", err, d.Reason)
}

// IPLocator resolves a client address to coordinates through an ip-api.com compatible endpoint.
type IPLocator struct {
	baseURL    string
	ip         string
	httpClient *http.Client
}

// NewIPLocator creates new IPLocator for the given client address.
func NewIPLocator(baseURL, ip string, timeout time.Duration) *IPLocator {
	return &IPLocator{
		baseURL:    baseURL,
		ip:         ip,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Locate looks up the client address.
func (l *IPLocator) Locate(ctx context.Context) (model.Coordinates, error) {
	ip := net.ParseIP(l.ip)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() {
		return model.Coordinates{}, fmt.Errorf("%w: address %q can not be located", ErrUnavailable, l.ip)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/"+ip.String(), nil)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("%w: failed to read response body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return model.Coordinates{}, fmt.Errorf("%w: locator returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var res struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return model.Coordinates{}, fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}

	if res.Status != "success" {
		return model.Coordinates{}, fmt.Errorf("%w: %s", ErrUnavailable, res.Message)
	}

	return model.Coordinates{Lat: res.Lat, Lon: res.Lon}, nil
}
