// Package session keeps one dashboard per browser session.
package session

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/katiamach/weather-dashboard/internal/geolocation"
	"github.com/katiamach/weather-dashboard/internal/model"
	"github.com/katiamach/weather-dashboard/internal/service"
)

// Factory creates dashboard for a new session. The client address seeds its fallback geolocation.
type Factory func(clientIP string) *service.Dashboard

// NewFactory returns Factory wiring dashboards to shared clients.
// Until the browser reports its position, sessions are located by client address.
func NewFactory(geocoder service.Geocoder, weather service.WeatherClient, locate func(clientIP string) geolocation.Locator, units model.Units) Factory {
	return func(clientIP string) *service.Dashboard {
		return service.New(geocoder, weather, locate(clientIP), units)
	}
}

type entry struct {
	dashboard *service.Dashboard
	lastSeen  time.Time
}

// Registry holds dashboards by session id.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	factory  Factory
	now      func() time.Time
	entropy  *ulid.MonotonicEntropy
}

// NewRegistry creates new Registry.
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		factory:  factory,
		now:      time.Now,
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}
}

// Acquire returns dashboard of session id, creating a new session when id is unknown.
// The returned id is the one the client should keep.
func (r *Registry) Acquire(id, clientIP string) (string, *service.Dashboard) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	if e, ok := r.sessions[id]; ok {
		e.lastSeen = now
		return id, e.dashboard
	}

	newID := ulid.MustNew(ulid.Timestamp(now), r.entropy).String()
	e := &entry{
		dashboard: r.factory(clientIP),
		lastSeen:  now,
	}
	r.sessions[newID] = e

	return newID, e.dashboard
}

// Len returns number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many were dropped.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)

	var dropped int
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			dropped++
		}
	}

	return dropped
}
