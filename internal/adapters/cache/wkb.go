package cache

import (
	"encoding/binary"
	"fmt"
	"waypoint-route-service/internal/domain"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// encodePath stores a path as a WKB LineString so cached coordinates stay bit-exact.
func encodePath(path []domain.Coordinates) ([]byte, error) {
	flat := make([]float64, 0, 2*len(path))
	for _, c := range path {
		flat = append(flat, c.Lon, c.Lat)
	}

	b, err := wkb.Marshal(geom.NewLineStringFlat(geom.XY, flat), binary.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("encode path: %w", err)
	}
	return b, nil
}

func decodePath(b []byte) ([]domain.Coordinates, error) {
	g, err := wkb.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("decode path: %w", err)
	}

	ls, ok := g.(*geom.LineString)
	if !ok {
		return nil, fmt.Errorf("decode path: expected LineString, got %T", g)
	}

	out := make([]domain.Coordinates, 0, ls.NumCoords())
	for i := 0; i < ls.NumCoords(); i++ {
		c := ls.Coord(i)
		out = append(out, domain.Coordinates{Lon: c.X(), Lat: c.Y()})
	}
	return out, nil
}
