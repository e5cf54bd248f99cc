package api

import (
	"net/http"
	"waypoint-route-service/internal/api/handlers"
	"waypoint-route-service/internal/ports"
	"waypoint-route-service/internal/services"
	"waypoint-route-service/internal/session"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// roster may be nil, which disables /technicians and the roster sheet of exports.
func NewRouter(
	sessions *session.Registry,
	assembler *services.RouteAssembler,
	roster ports.TechnicianRepository,
) http.Handler {
	r := mux.NewRouter()

	sessionHandler := &handlers.SessionHandler{Sessions: sessions}
	waypointHandler := &handlers.WaypointHandler{Sessions: sessions}
	routeHandler := &handlers.RouteHandler{Sessions: sessions, Assembler: assembler}
	exportHandler := &handlers.ExportHandler{Sessions: sessions, Roster: roster}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	r.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{session_id}", sessionHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/sessions/{session_id}/waypoints", waypointHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{session_id}/waypoints", waypointHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{session_id}/waypoints", waypointHandler.Clear).Methods(http.MethodDelete)
	r.HandleFunc("/sessions/{session_id}/waypoints/{waypoint_id}", waypointHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/sessions/{session_id}/route", routeHandler.Route).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{session_id}/export.xlsx", exportHandler.Export).Methods(http.MethodGet)

	if roster != nil {
		technicianHandler := &handlers.TechnicianHandler{Repo: roster}
		r.HandleFunc("/technicians", technicianHandler.List).Methods(http.MethodGet)
	}

	return requestIDMiddleware(loggingMiddleware(r))
}
