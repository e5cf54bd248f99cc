package domain

// A field technician from the static roster.
// The roster is reference data shown next to a route; it is not linked to waypoints.
type Technician struct {
	TechnicianID int
	Name         string
	Phone        string
	Zone         string
}
