package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"weather-badge/internal/models"
	"weather-badge/pkg/observe"
)

// PirateWeatherRepository fetches current conditions from a Dark Sky wire
// format endpoint: GET <base>/forecast/<key>/<lat>,<lon>. The key travels
// in the request path and must never reach a log field.
type PirateWeatherRepository struct {
	BaseURL    string
	apiKey     string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewPirateWeatherRepository(baseURL, apiKey string, l *observe.Logger, httpClient HTTPClient) (*PirateWeatherRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	return &PirateWeatherRepository{
		BaseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (w *PirateWeatherRepository) Name() string {
	return "pirateweather"
}

func (w *PirateWeatherRepository) Current(ctx context.Context, coords models.Coordinates) (*models.WeatherReport, error) {
	url := fmt.Sprintf("%s/forecast/%s/%s", w.BaseURL, w.apiKey, coords.PathParam())

	w.l.Info("making forecast request", map[string]any{
		"lat": coords.Lat,
		"lon": coords.Lon,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", models.ErrWeatherLookup, err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: do request: %w", models.ErrWeatherLookup, err)
	}
	defer resp.Body.Close()

	w.l.Info("received forecast response", map[string]any{
		"status": resp.StatusCode,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %w", models.ErrWeatherLookup, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: HTTP error (status %d): %s", models.ErrWeatherLookup, resp.StatusCode, resp.Status)
	}

	var report models.WeatherReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("%w: parse JSON response: %w", models.ErrWeatherLookup, err)
	}

	w.l.Info("parsed forecast response", map[string]any{
		"icon":    report.Currently.Icon,
		"summary": report.Currently.Summary,
	})

	return &report, nil
}
