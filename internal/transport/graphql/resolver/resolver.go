// Package resolver implements the GraphQL query and mutation fields on top of
// the lookup, geo and dataset services.
package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/dataset"
	"github.com/heartmarshall/tenantlookup/internal/service/lookup"
	"github.com/heartmarshall/tenantlookup/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/tenantlookup/internal/transport/graphql/model"
)

// lookupService defines what resolver needs from the Lookup service.
type lookupService interface {
	Query(ctx context.Context, state lookup.State, raw string) (*lookup.Result, error)
	Suggest(ctx context.Context, mode domain.SearchMode, raw string, limit int) ([]string, error)
}

// geoService defines what resolver needs from the Geo service.
type geoService interface {
	SearchNearby(ctx context.Context, lat, lng float64) ([]domain.GeoResult, error)
	Radius() int
}

// datasetService defines what resolver needs from the Dataset service.
type datasetService interface {
	Current() *dataset.Snapshot
	Refresh(ctx context.Context) (*dataset.Snapshot, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	lookup  lookupService
	geo     geoService
	dataset datasetService
	log     *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(log *slog.Logger, lookup lookupService, geo geoService, dataset datasetService) *Resolver {
	return &Resolver{
		lookup:  lookup,
		geo:     geo,
		dataset: dataset,
		log:     log.With("component", "graphql"),
	}
}

// Search resolves Query.search.
func (r *Resolver) Search(ctx context.Context, query string, mode model.SearchMode) (*model.SearchResult, error) {
	res, err := r.lookup.Query(ctx, lookup.State{Mode: mode.Domain(), Language: domain.LanguageEnglish}, query)
	if err != nil {
		return nil, err
	}
	return toSearchResult(res), nil
}

// Suggest resolves Query.suggest. A nil limit uses the configured default.
func (r *Resolver) Suggest(ctx context.Context, query string, mode model.SearchMode, limit *int) ([]string, error) {
	var n int
	if limit != nil {
		if *limit < 1 {
			return nil, domain.NewValidationError("limit", "must be a positive integer")
		}
		n = *limit
	}
	return r.lookup.Suggest(ctx, mode.Domain(), query, n)
}

// Nearby resolves Query.nearby. Tenants of each hit are resolved separately
// by NearbyTenants.
func (r *Resolver) Nearby(ctx context.Context, lat, lng float64) (*model.NearbyResult, error) {
	results, err := r.geo.SearchNearby(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	out := &model.NearbyResult{
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: r.geo.Radius(),
		Results:      make([]*model.NearbyMatch, 0, len(results)),
	}
	for _, g := range results {
		out.Results = append(out.Results, &model.NearbyMatch{
			Eircode:    g.Eircode,
			Address:    g.Address,
			Latitude:   g.Lat,
			Longitude:  g.Lng,
			DistanceKm: g.DistanceKm,
		})
	}
	return out, nil
}

// NearbyTenants resolves NearbyMatch.tenants through the per-request loader.
func (r *Resolver) NearbyTenants(ctx context.Context, obj *model.NearbyMatch) ([]*model.Tenant, error) {
	records, err := dataloader.FromContext(ctx).TenantsByEircode.Load(ctx, obj.Eircode)()
	if err != nil {
		return nil, err
	}
	return toTenants(records), nil
}

// Dataset resolves Query.dataset.
func (r *Resolver) Dataset(_ context.Context) (*model.Dataset, error) {
	snap := r.dataset.Current()
	if snap == nil {
		return nil, domain.ErrNoData
	}
	return toDataset(snap), nil
}

// Refresh resolves Mutation.refresh.
func (r *Resolver) Refresh(ctx context.Context) (*model.Dataset, error) {
	snap, err := r.dataset.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	r.log.InfoContext(ctx, "dataset refreshed",
		slog.String("source", snap.Source.String()),
		slog.Int("records", len(snap.Records)),
	)
	return toDataset(snap), nil
}
