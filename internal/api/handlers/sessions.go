package handlers

import (
	"net/http"
	"waypoint-route-service/internal/api/dto"
	"waypoint-route-service/internal/session"

	"github.com/gorilla/mux"
)

// SessionHandler starts and ends interactive sessions.
type SessionHandler struct {
	Sessions *session.Registry
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := h.Sessions.Create()
	writeJSON(w, r, http.StatusCreated, dto.SessionResponse{SessionID: id})
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Sessions.Delete(mux.Vars(r)["session_id"]) {
		writeError(w, r, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
