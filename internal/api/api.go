package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/katiamach/weather-dashboard/internal/config"
	"github.com/katiamach/weather-dashboard/internal/geolocation"
	"github.com/katiamach/weather-dashboard/internal/logger"
	"github.com/katiamach/weather-dashboard/internal/provider/openweather"
	"github.com/katiamach/weather-dashboard/internal/session"
	"github.com/katiamach/weather-dashboard/internal/transport/rest/handler"
	"github.com/katiamach/weather-dashboard/internal/view"
)

// RunAPI runs weather dashboard API.
func RunAPI(cfg config.Config) error {
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}

	if err := view.LoadTemplates(); err != nil {
		return err
	}

	client := openweather.New(openweather.Options{
		APIKey:        cfg.APIKey,
		WeatherAPIURL: cfg.WeatherAPIURL,
		GeoAPIURL:     cfg.GeoAPIURL,
		Timeout:       cfg.HTTPTimeout,
	})

	locate := func(clientIP string) geolocation.Locator {
		return geolocation.NewIPLocator(cfg.IPLocatorURL, clientIP, cfg.HTTPTimeout)
	}

	registry := session.NewRegistry(session.NewFactory(client, client, locate, cfg.DefaultUnits))
	go sweepSessions(context.Background(), registry, cfg.SessionIdleTTL)

	server := handler.NewDashboardServer(sessionStore{registry}, cfg.IconBaseURL)

	logger.WithFields(logrus.Fields{
		"port":  cfg.Port,
		"units": cfg.DefaultUnits,
	}).Info("Starting weather dashboard")

	return http.ListenAndServe(":"+cfg.Port, newRouter(server, cfg))
}

func newRouter(server *handler.DashboardServer, cfg config.Config) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", server.PageHandler).Methods(http.MethodGet)
	r.HandleFunc("/partials/dashboard", server.DashboardPartialHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", server.StateHandler).Methods(http.MethodGet)
	api.HandleFunc("/schema", server.SchemaHandler).Methods(http.MethodGet)
	api.HandleFunc("/locate", server.LocateHandler).Methods(http.MethodPost)
	api.HandleFunc("/search", server.SearchHandler).Methods(http.MethodPost)
	api.HandleFunc("/units", server.UnitsHandler).Methods(http.MethodPost)

	var h http.Handler = r
	h = rateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)(h)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	h = handlers.LoggingHandler(logger.Writer(), h)
	h = requestID(h)
	h = handlers.ProxyHeaders(h)
	h = handlers.CORS(setupCorsOptions(cfg.Origin)...)(h)

	return h
}

// sessionStore exposes registry dashboards through the handler interface.
type sessionStore struct {
	registry *session.Registry
}

func (s sessionStore) Acquire(id, clientIP string) (string, handler.Dashboard) {
	newID, d := s.registry.Acquire(id, clientIP)
	return newID, d
}

func sweepSessions(ctx context.Context, registry *session.Registry, ttl time.Duration) {
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := registry.Sweep(ttl); n > 0 {
				logger.WithFields(logrus.Fields{"dropped": n, "live": registry.Len()}).Debug("swept idle sessions")
			}
		}
	}
}
