package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"weather-badge/internal/models"
	"weather-badge/pkg/observe"
)

// GeoIPRepository resolves an address against an ip-api style endpoint:
// GET <base>/json/<ip> returning numeric lat/lon fields.
type GeoIPRepository struct {
	BaseURL    string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewGeoIPRepository(baseURL string, l *observe.Logger, httpClient HTTPClient) *GeoIPRepository {
	return &GeoIPRepository{
		BaseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (g *GeoIPRepository) Name() string {
	return "geoip"
}

type geoIPResponse struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

func (g *GeoIPRepository) Lookup(ctx context.Context, addr string) (models.Coordinates, error) {
	url := fmt.Sprintf("%s/json/%s", g.BaseURL, addr)

	g.l.Info("making geolocation request", map[string]any{
		"addr": addr,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: create request: %w", models.ErrLocationUnavailable, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: do request: %w", models.ErrLocationUnavailable, err)
	}
	defer resp.Body.Close()

	g.l.Info("received geolocation response", map[string]any{
		"status": resp.StatusCode,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: read response body: %w", models.ErrLocationUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Coordinates{}, fmt.Errorf("%w: HTTP error (status %d): %s", models.ErrLocationUnavailable, resp.StatusCode, resp.Status)
	}

	var response geoIPResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: parse JSON response: %w", models.ErrLocationUnavailable, err)
	}

	// Both coordinates must be present and numeric
	if response.Lat == nil || response.Lon == nil {
		return models.Coordinates{}, fmt.Errorf("%w: response missing lat/lon", models.ErrLocationUnavailable)
	}

	return models.Coordinates{
		Lat: *response.Lat,
		Lon: *response.Lon,
	}, nil
}
