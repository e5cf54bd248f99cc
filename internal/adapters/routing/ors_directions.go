package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"waypoint-route-service/internal/domain"
	"waypoint-route-service/internal/platform/obs"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

const (
	defaultORSBaseURL = "https://api.openrouteservice.org"
	defaultORSProfile = "driving-car"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Geometry json.RawMessage `json:"geometry"`
	} `json:"features"`
}

// ORSDirectionsProvider implements RoutingProvider using the OpenRouteService
// directions endpoint. It is safe for concurrent use.
type ORSDirectionsProvider struct {
	client  httpClient
	baseURL string
	profile string
}

func NewORSDirectionsProvider(apiKey, baseURL, profile string) (*ORSDirectionsProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if baseURL == "" {
		baseURL = defaultORSBaseURL
	}
	if profile == "" {
		profile = defaultORSProfile
	}

	return &ORSDirectionsProvider{
		client:  newHTTPClient(10*time.Second, map[string]string{"Authorization": apiKey}),
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: profile,
	}, nil
}

func (o *ORSDirectionsProvider) Name() string { return "ors:" + o.profile }

// Route requests a street path through stops, in order.
func (o *ORSDirectionsProvider) Route(
	ctx context.Context,
	stops []domain.Coordinates,
) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Route")(&err)

	if len(stops) < 2 {
		return nil, fmt.Errorf("ors route: need at least 2 stops, got %d", len(stops))
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	bodyObj := directionsRequest{Coordinates: make([][]float64, 0, len(stops))}
	for _, c := range stops {
		bodyObj.Coordinates = append(bodyObj.Coordinates, c.CoordsToList())
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("ors route: marshal directions request: %w", err)
	}

	resp, err := o.client.doWithRetry(ctx, func() (*http.Request, error) {
		return o.client.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("ors route: directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("ors route: decode directions response: %w", err)
	}

	if len(dr.Features) == 0 {
		return nil, errors.New("ors route: response has no features")
	}

	var g geom.T
	if err := geojson.Unmarshal(dr.Features[0].Geometry, &g); err != nil {
		return nil, fmt.Errorf("ors route: decode geometry: %w", err)
	}

	ls, ok := g.(*geom.LineString)
	if !ok {
		return nil, fmt.Errorf("ors route: expected LineString geometry, got %T", g)
	}

	return fromLineString(ls), nil
}

// fromLineString converts [lon, lat(, elevation)] vertices into Coordinates.
func fromLineString(ls *geom.LineString) []domain.Coordinates {
	out := make([]domain.Coordinates, 0, ls.NumCoords())
	for i := 0; i < ls.NumCoords(); i++ {
		c := ls.Coord(i)
		out = append(out, domain.Coordinates{Lon: c.X(), Lat: c.Y()})
	}
	return out
}
