package dto

import "encoding/json"

type RouteResponse struct {
	Waypoints []WaypointResponse `json:"waypoints"`
	// Path points as [lat, lon].
	Path     [][2]float64    `json:"path"`
	Source   string          `json:"source"`
	DrawLine bool            `json:"draw_line"`
	Polyline string          `json:"polyline,omitempty"`
	Geometry json.RawMessage `json:"geometry,omitempty"`
}
