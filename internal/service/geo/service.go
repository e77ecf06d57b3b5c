package geo

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/provider"
)

type nearbySource interface {
	SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]provider.NearbyResult, error)
}

// Service provides proximity lookups against the data source.
type Service struct {
	source       nearbySource
	radiusMeters int
	log          *slog.Logger
}

// NewService creates a new Geo service. radiusMeters <= 0 falls back to
// domain.DefaultRadiusMeters.
func NewService(log *slog.Logger, source nearbySource, radiusMeters int) *Service {
	if radiusMeters <= 0 {
		radiusMeters = domain.DefaultRadiusMeters
	}
	return &Service{
		source:       source,
		radiusMeters: radiusMeters,
		log:          log.With("service", "geo"),
	}
}

// SearchNearby returns locations within the configured radius of (lat, lng),
// nearest first. Zero hits yield an empty slice and a nil error; any
// transport or decoding failure yields nil and an error wrapping
// domain.ErrSourceUnavailable.
func (s *Service) SearchNearby(ctx context.Context, lat, lng float64) ([]domain.GeoResult, error) {
	point := domain.Coordinate{Lat: lat, Lng: lng}
	if err := point.Validate(); err != nil {
		return nil, err
	}

	found, err := s.source.SearchNearby(ctx, lat, lng, s.radiusMeters)
	if err != nil {
		if !errors.Is(err, domain.ErrSourceUnavailable) {
			err = domain.NewTransportError("geo", err)
		}
		s.log.WarnContext(ctx, "nearby search failed",
			slog.String("point", point.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	results := make([]domain.GeoResult, 0, len(found))
	for _, r := range found {
		results = append(results, domain.GeoResult{
			Eircode:    r.Eircode,
			Address:    r.Address,
			Lat:        r.Lat,
			Lng:        r.Lng,
			DistanceKm: r.DistanceKm,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	s.log.DebugContext(ctx, "nearby search",
		slog.String("point", point.String()),
		slog.Int("radius_m", s.radiusMeters),
		slog.Int("results", len(results)),
	)
	return results, nil
}

// Radius returns the search radius in meters.
func (s *Service) Radius() int { return s.radiusMeters }
