package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Return coordinates as [lat, lon], the order map widgets and users expect.
func (c Coordinates) LatLon() [2]float64 { return [2]float64{c.Lat, c.Lon} }

func (c Coordinates) IsFinite() bool {
	return !math.IsNaN(c.Lat) && !math.IsNaN(c.Lon) && !math.IsInf(c.Lat, 0) && !math.IsInf(c.Lon, 0)
}

// ParseCoordinates reads a combined "lat, lon" text field.
//
// The text must split on a comma into exactly two float-parsable parts.
// Ranges are not checked: any finite latitude and longitude is accepted.
func ParseCoordinates(text string) (Coordinates, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return Coordinates{}, fmt.Errorf("%w: expected 2 comma separated values, got %d", ErrInvalidCoordinates, len(parts))
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinates, strings.TrimSpace(parts[0]))
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinates, strings.TrimSpace(parts[1]))
	}

	c := Coordinates{Lat: lat, Lon: lon}
	if !c.IsFinite() {
		return Coordinates{}, fmt.Errorf("%w: values must be finite", ErrInvalidCoordinates)
	}

	return c, nil
}
