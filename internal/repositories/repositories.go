package repositories

import (
	"context"
	"net/http"

	"weather-badge/internal/models"
)

// HTTPClient is the slice of *http.Client the repositories need; tests
// substitute their own.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GeoRepository maps a network address to coordinates.
type GeoRepository interface {
	Name() string
	Lookup(ctx context.Context, addr string) (models.Coordinates, error)
}

// ForecastRepository fetches the current-conditions payload for a point.
type ForecastRepository interface {
	Name() string
	Current(ctx context.Context, coords models.Coordinates) (*models.WeatherReport, error)
}
