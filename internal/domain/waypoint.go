package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultLabel names a waypoint submitted without a label.
const DefaultLabel = "Unnamed stop"

// Raw form values for a new waypoint, exactly as the user typed them.
type WaypointInput struct {
	Label        string
	ContactPhone string
	Coordinates  string
	Date         string
	Time         string
}

// Represents one physical stop.
// A Waypoint is immutable once built; the only way to obtain one is NewWaypoint,
// so records with missing ids or malformed coordinates never reach a store.
type Waypoint struct {
	ID            string
	Label         string
	ContactPhone  string
	Location      Coordinates
	ScheduledDate time.Time // zero when the stop has no date
	ScheduledTime TimeOfDay
	CreatedAt     time.Time
}

// NewWaypoint validates raw input and builds a Waypoint with a fresh unique id.
func NewWaypoint(in WaypointInput) (Waypoint, error) {
	loc, err := ParseCoordinates(in.Coordinates)
	if err != nil {
		return Waypoint{}, err
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return Waypoint{}, err
	}

	tod, err := ParseTimeOfDay(in.Time)
	if err != nil {
		return Waypoint{}, err
	}

	label := strings.TrimSpace(in.Label)
	if label == "" {
		label = DefaultLabel
	}

	return Waypoint{
		ID:            uuid.NewString(),
		Label:         label,
		ContactPhone:  strings.TrimSpace(in.ContactPhone),
		Location:      loc,
		ScheduledDate: date,
		ScheduledTime: tod,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

func (w Waypoint) HasDate() bool { return !w.ScheduledDate.IsZero() }

// CompareSchedule orders waypoints by date then time of day.
// Undated waypoints sort after dated ones.
func CompareSchedule(a, b Waypoint) int {
	switch {
	case a.HasDate() && !b.HasDate():
		return -1
	case !a.HasDate() && b.HasDate():
		return 1
	case a.HasDate() && b.HasDate():
		if c := a.ScheduledDate.Compare(b.ScheduledDate); c != 0 {
			return c
		}
	}

	switch {
	case a.ScheduledTime < b.ScheduledTime:
		return -1
	case a.ScheduledTime > b.ScheduledTime:
		return 1
	}
	return 0
}
