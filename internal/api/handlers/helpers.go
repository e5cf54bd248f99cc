package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"waypoint-route-service/internal/api/dto"
	"waypoint-route-service/internal/domain"
	"waypoint-route-service/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithFields(log.Fields{"method": r.Method, "path": r.URL.Path}).WithError(err).Error("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

var errTrailingData = errors.New("body must contain only one JSON object")

// decodeJSON reads exactly one JSON object with no unknown fields and validates it.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errTrailingData
	}
	return validate.Struct(v)
}

// sessionStore resolves the {session_id} path variable, writing 404 when unknown.
func sessionStore(w http.ResponseWriter, r *http.Request, sessions *session.Registry) (*domain.WaypointStore, bool) {
	id := mux.Vars(r)["session_id"]
	store, ok := sessions.Get(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "session not found")
		return nil, false
	}
	return store, true
}

func toWaypointResponse(wp domain.Waypoint) dto.WaypointResponse {
	res := dto.WaypointResponse{
		ID:           wp.ID,
		Label:        wp.Label,
		ContactPhone: wp.ContactPhone,
		Latitude:     wp.Location.Lat,
		Longitude:    wp.Location.Lon,
		Time:         wp.ScheduledTime.String(),
	}
	if wp.HasDate() {
		res.Date = wp.ScheduledDate.Format(domain.DateLayout)
	}
	return res
}

func toWaypointResponses(wps []domain.Waypoint) []dto.WaypointResponse {
	out := make([]dto.WaypointResponse, 0, len(wps))
	for _, wp := range wps {
		out = append(out, toWaypointResponse(wp))
	}
	return out
}
