package dto

type CreateWaypointRequest struct {
	Label        string `json:"label" validate:"max=200"`
	ContactPhone string `json:"contact_phone" validate:"max=32"`
	Coordinates  string `json:"coordinates" validate:"required"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

type WaypointResponse struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	ContactPhone string  `json:"contact_phone,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Date         string  `json:"date,omitempty"`
	Time         string  `json:"time"`
}

type ListWaypointsResponse struct {
	Waypoints []WaypointResponse `json:"waypoints"`
}
