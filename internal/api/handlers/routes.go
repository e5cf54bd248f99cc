package handlers

import (
	"net/http"
	"waypoint-route-service/internal/api/dto"
	"waypoint-route-service/internal/domain"
	"waypoint-route-service/internal/services"
	"waypoint-route-service/internal/session"

	log "github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-polyline"
)

// RouteHandler renders the assembled route of a session.
type RouteHandler struct {
	Sessions  *session.Registry
	Assembler *services.RouteAssembler
}

// Route sorts the session's waypoints and returns them with the path to draw.
// Routing provider failures show up only as source=straight_line.
func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	store, ok := sessionStore(w, r, h.Sessions)
	if !ok {
		return
	}

	route := h.Assembler.Assemble(r.Context(), store.List())

	res := dto.RouteResponse{
		Waypoints: toWaypointResponses(route.Waypoints),
		Path:      make([][2]float64, 0, len(route.Path)),
		Source:    string(route.Source),
		DrawLine:  route.DrawLine(),
	}
	for _, c := range route.Path {
		res.Path = append(res.Path, c.LatLon())
	}

	if route.DrawLine() {
		res.Polyline = encodePolyline(route.Path)

		geometry, err := geojson.Marshal(lineString(route.Path))
		if err != nil {
			log.WithError(err).Warn("encode route geometry failed")
		} else {
			res.Geometry = geometry
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func lineString(path []domain.Coordinates) *geom.LineString {
	flat := make([]float64, 0, 2*len(path))
	for _, c := range path {
		flat = append(flat, c.Lon, c.Lat)
	}
	return geom.NewLineStringFlat(geom.XY, flat)
}

func encodePolyline(path []domain.Coordinates) string {
	coords := make([][]float64, 0, len(path))
	for _, c := range path {
		coords = append(coords, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
