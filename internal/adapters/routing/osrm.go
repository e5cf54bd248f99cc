package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
	"waypoint-route-service/internal/domain"
	"waypoint-route-service/internal/platform/obs"

	"github.com/twpayne/go-polyline"
)

const (
	polylinePrecision  = 1e5
	defaultOSRMBaseURL = "https://router.project-osrm.org"
	defaultOSRMProfile = "driving"
)

type osrmRouteResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// OSRMProvider implements RoutingProvider against an OSRM route service.
// The public OSRM demo server needs no API key.
type OSRMProvider struct {
	client  httpClient
	baseURL string
	profile string
}

func NewOSRMProvider(baseURL, profile string) *OSRMProvider {
	if baseURL == "" {
		baseURL = defaultOSRMBaseURL
	}
	if profile == "" {
		profile = defaultOSRMProfile
	}

	return &OSRMProvider{
		client:  newHTTPClient(10*time.Second, nil),
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: profile,
	}
}

func (o *OSRMProvider) Name() string { return "osrm:" + o.profile }

func (o *OSRMProvider) Route(
	ctx context.Context,
	stops []domain.Coordinates,
) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	if len(stops) < 2 {
		return nil, fmt.Errorf("osrm route: need at least 2 stops, got %d", len(stops))
	}

	pairs := make([]string, 0, len(stops))
	for _, c := range stops {
		pairs = append(pairs,
			strconv.FormatFloat(c.Lon, 'f', -1, 64)+","+strconv.FormatFloat(c.Lat, 'f', -1, 64))
	}
	endpoint := fmt.Sprintf("%s/route/v1/%s/%s", o.baseURL, o.profile, strings.Join(pairs, ";"))

	resp, err := o.client.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.client.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("overview", "full")
		q.Set("geometries", "polyline")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("osrm route: request failed: %w", err)
	}
	defer resp.Body.Close()

	var rr osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, fmt.Errorf("osrm route: decode response: %w", err)
	}

	if rr.Code != "Ok" {
		return nil, fmt.Errorf("osrm route: service returned code %q: %s", rr.Code, rr.Message)
	}
	if len(rr.Routes) == 0 {
		return nil, errors.New("osrm route: response has no routes")
	}

	coords, _, err := polyline.DecodeCoords([]byte(rr.Routes[0].Geometry))
	if err != nil {
		return nil, fmt.Errorf("osrm route: decode polyline: %w", err)
	}

	out := make([]domain.Coordinates, 0, len(coords))
	for _, c := range coords {
		if len(c) != 2 {
			return nil, fmt.Errorf("osrm route: invalid polyline vertex %v", c)
		}
		out = append(out, domain.Coordinates{Lat: roundPolyline(c[0]), Lon: roundPolyline(c[1])})
	}

	return out, nil
}

// roundPolyline snaps a decoded value back onto the 1e-5 grid of the
// polyline encoding; DecodeCoords accumulates float error across deltas.
func roundPolyline(v float64) float64 {
	return math.Round(v*polylinePrecision) / polylinePrecision
}
