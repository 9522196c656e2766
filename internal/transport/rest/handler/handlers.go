package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"

	"github.com/katiamach/weather-dashboard/internal/dashboard"
	"github.com/katiamach/weather-dashboard/internal/geolocation"
	"github.com/katiamach/weather-dashboard/internal/logger"
	"github.com/katiamach/weather-dashboard/internal/model"
	"github.com/katiamach/weather-dashboard/internal/service"
	"github.com/katiamach/weather-dashboard/internal/view"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go

// SessionCookie is the name of the cookie carrying session id.
const SessionCookie = "dashboard_session"

const maxBodyBytes = 1 << 12

// Dashboard provides dashboard operations of a single session.
type Dashboard interface {
	Snapshot() dashboard.Snapshot
	Locate(ctx context.Context, locator geolocation.Locator) (dashboard.Snapshot, error)
	Search(ctx context.Context, query string) (dashboard.Snapshot, error)
	SetUnits(ctx context.Context, units model.Units) (dashboard.Snapshot, error)
}

// Sessions provides dashboards by session id.
type Sessions interface {
	Acquire(id, clientIP string) (string, Dashboard)
}

// DashboardServer is a server for weather dashboard sessions.
type DashboardServer struct {
	sessions    Sessions
	iconBaseURL string
}

// NewDashboardServer creates new DashboardServer.
func NewDashboardServer(sessions Sessions, iconBaseURL string) *DashboardServer {
	return &DashboardServer{
		sessions:    sessions,
		iconBaseURL: iconBaseURL,
	}
}

type locateRequest struct {
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Error            string   `json:"error"`
	PermissionDenied bool     `json:"permissionDenied"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type unitsRequest struct {
	Units string `json:"units"`
}

// PageHandler renders the full dashboard page.
func (s *DashboardServer) PageHandler(w http.ResponseWriter, r *http.Request) {
	d := s.session(w, r)
	respondHTML(w, view.RenderPage, view.NewPage(d.Snapshot(), s.iconBaseURL))
}

// DashboardPartialHandler renders the dashboard fragment.
func (s *DashboardServer) DashboardPartialHandler(w http.ResponseWriter, r *http.Request) {
	d := s.session(w, r)
	respondHTML(w, view.RenderDashboard, view.NewPage(d.Snapshot(), s.iconBaseURL))
}

// StateHandler returns the dashboard snapshot.
func (s *DashboardServer) StateHandler(w http.ResponseWriter, r *http.Request) {
	d := s.session(w, r)
	respond(w, http.StatusOK, d.Snapshot())
}

// LocateHandler handles a geolocation reading reported by the browser.
func (s *DashboardServer) LocateHandler(w http.ResponseWriter, r *http.Request) {
	var req locateRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	locator, err := validateLocateRequest(&req)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	d := s.session(w, r)
	snap, err := d.Locate(r.Context(), locator)
	respondAttempt(w, snap, err)
}

// SearchHandler handles a manual location search.
func (s *DashboardServer) SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	d := s.session(w, r)
	snap, err := d.Search(r.Context(), req.Query)
	if errors.Is(err, service.ErrEmptyQuery) {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	respondAttempt(w, snap, err)
}

// UnitsHandler handles a unit system change.
func (s *DashboardServer) UnitsHandler(w http.ResponseWriter, r *http.Request) {
	var req unitsRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	units, err := model.ParseUnits(req.Units)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	d := s.session(w, r)
	snap, err := d.SetUnits(r.Context(), units)
	respondAttempt(w, snap, err)
}

// SchemaHandler returns JSON schema of the dashboard snapshot.
func (s *DashboardServer) SchemaHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, jsonschema.Reflect(&dashboard.Snapshot{}))
}

// HealthHandler reports liveness.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *DashboardServer) session(w http.ResponseWriter, r *http.Request) Dashboard {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}

	newID, d := s.sessions.Acquire(id, clientIP(r))
	if newID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    newID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return d
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

func validateLocateRequest(req *locateRequest) (geolocation.Locator, error) {
	if req.Error != "" || req.PermissionDenied {
		return geolocation.Denied{Reason: req.Error, PermissionDenied: req.PermissionDenied}, nil
	}

	if req.Latitude == nil || req.Longitude == nil {
		return nil, errors.New("latitude and longitude should be provided")
	}

	if *req.Latitude < -90 || *req.Latitude > 90 {
		return nil, errors.New("latitude should be between -90 and 90")
	}

	if *req.Longitude < -180 || *req.Longitude > 180 {
		return nil, errors.New("longitude should be between -180 and 180")
	}

	return geolocation.Fixed{Lat: *req.Latitude, Lon: *req.Longitude}, nil
}

// respondAttempt responds with the snapshot; attempt failures are part of it.
func respondAttempt(w http.ResponseWriter, snap dashboard.Snapshot, err error) {
	if err != nil {
		logger.Debug(fmt.Sprintf("attempt finished with error: %v", err))
	}

	respond(w, http.StatusOK, snap)
}
