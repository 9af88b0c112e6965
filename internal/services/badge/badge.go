package badge

import (
	"context"

	"github.com/pkg/errors"

	"weather-badge/internal/clientip"
	"weather-badge/internal/icon"
	"weather-badge/internal/repositories"
	"weather-badge/pkg/observe"
)

// Service runs the resolve -> fetch -> render pipeline. Stages are strictly
// sequential and single-attempt: the first failure aborts the request and
// the weather stage is never reached after a resolver failure.
type Service struct {
	resolver *clientip.Resolver
	geo      repositories.GeoRepository
	forecast repositories.ForecastRepository
	l        *observe.Logger
}

func NewService(
	resolver *clientip.Resolver,
	geo repositories.GeoRepository,
	forecast repositories.ForecastRepository,
	l *observe.Logger,
) *Service {
	return &Service{
		resolver: resolver,
		geo:      geo,
		forecast: forecast,
		l:        l,
	}
}

// Render produces the SVG badge for the client behind the given request
// metadata.
func (s *Service) Render(ctx context.Context, forwardedFor, remoteAddr string) (string, error) {
	addr := s.resolver.ClientAddr(forwardedFor, remoteAddr)

	s.l.Debug("resolving location", map[string]any{
		"repo": s.geo.Name(),
		"addr": addr.String(),
	})

	coords, err := s.geo.Lookup(ctx, addr.String())
	if err != nil {
		s.l.Warning("failed to resolve location", map[string]any{
			"repo": s.geo.Name(),
			"err":  err,
		})
		return "", errors.Wrap(err, "resolve location")
	}

	s.l.Debug("fetching current conditions", map[string]any{
		"repo": s.forecast.Name(),
		"lat":  coords.Lat,
		"lon":  coords.Lon,
	})

	report, err := s.forecast.Current(ctx, coords)
	if err != nil {
		s.l.Warning("failed to fetch current conditions", map[string]any{
			"repo": s.forecast.Name(),
			"err":  err,
		})
		return "", errors.Wrap(err, "fetch current conditions")
	}

	s.l.Info("rendering badge", map[string]any{
		"icon": report.Currently.Icon,
		"lat":  coords.Lat,
		"lon":  coords.Lon,
	})

	return icon.Render(report.Currently.Icon), nil
}
