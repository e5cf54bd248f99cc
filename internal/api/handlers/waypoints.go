package handlers

import (
	"errors"
	"net/http"
	"time"
	"waypoint-route-service/internal/api/dto"
	"waypoint-route-service/internal/domain"
	"waypoint-route-service/internal/services"
	"waypoint-route-service/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// WaypointHandler exposes add/remove/clear on a session's waypoint store.
type WaypointHandler struct {
	Sessions *session.Registry
	Now      func() time.Time
}

// List returns the session's waypoints in schedule order.
func (h *WaypointHandler) List(w http.ResponseWriter, r *http.Request) {
	store, ok := sessionStore(w, r, h.Sessions)
	if !ok {
		return
	}

	sorted := services.SortWaypoints(store.List())
	writeJSON(w, r, http.StatusOK, dto.ListWaypointsResponse{Waypoints: toWaypointResponses(sorted)})
}

// Create validates the submitted form values and appends a waypoint.
// Malformed input is rejected with 400 and leaves the store unchanged.
func (h *WaypointHandler) Create(w http.ResponseWriter, r *http.Request) {
	store, ok := sessionStore(w, r, h.Sessions)
	if !ok {
		return
	}

	var req dto.CreateWaypointRequest
	if err := decodeJSON(r, &req); err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			writeError(w, r, http.StatusBadRequest, validationMessage(verrs))
		case errors.Is(err, errTrailingData):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			writeError(w, r, http.StatusBadRequest, "invalid json body")
		}
		return
	}

	// An omitted arrival time defaults to the current time of day.
	tod := req.Time
	if tod == "" {
		now := time.Now
		if h.Now != nil {
			now = h.Now
		}
		tod = now().Format(domain.TimeLayout)
	}

	wp, err := domain.NewWaypoint(domain.WaypointInput{
		Label:        req.Label,
		ContactPhone: req.ContactPhone,
		Coordinates:  req.Coordinates,
		Date:         req.Date,
		Time:         tod,
	})
	if err != nil {
		if domain.IsFormatError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("create waypoint failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	store.Add(wp)
	writeJSON(w, r, http.StatusCreated, toWaypointResponse(wp))
}

// Delete removes one waypoint by id. Unknown ids are a no-op.
func (h *WaypointHandler) Delete(w http.ResponseWriter, r *http.Request) {
	store, ok := sessionStore(w, r, h.Sessions)
	if !ok {
		return
	}

	store.RemoveByID(mux.Vars(r)["waypoint_id"])
	w.WriteHeader(http.StatusNoContent)
}

// Clear removes every waypoint in the session.
func (h *WaypointHandler) Clear(w http.ResponseWriter, r *http.Request) {
	store, ok := sessionStore(w, r, h.Sessions)
	if !ok {
		return
	}

	store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func validationMessage(verrs validator.ValidationErrors) string {
	if len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		if fe.Field() == "Coordinates" {
			return domain.ErrInvalidCoordinates.Error()
		}
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	}
	return fe.Field() + " is invalid"
}
