// Package dataloader provides per-request DataLoaders for GraphQL resolvers.
// Loaders read the installed dataset snapshot once per batch, so every
// tenant returned in one batch comes from the same snapshot.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/dataset"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type snapshotSource interface {
	Current() *dataset.Snapshot
}

// Loaders contains the DataLoaders of one request. Created per request via
// NewLoaders.
type Loaders struct {
	TenantsByEircode *dataloader.Loader[string, []domain.Record]
}

// NewLoaders creates the loaders over the given snapshot source.
func NewLoaders(data snapshotSource) *Loaders {
	return &Loaders{
		TenantsByEircode: newLoader(newTenantsBatchFn(data)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

func newTenantsBatchFn(data snapshotSource) dataloader.BatchFunc[string, []domain.Record] {
	return func(_ context.Context, keys []string) []*dataloader.Result[[]domain.Record] {
		snap := data.Current()
		if snap == nil {
			return errorResults[[]domain.Record](len(keys), domain.ErrNoData)
		}

		results := make([]*dataloader.Result[[]domain.Record], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[[]domain.Record]{Data: snap.Index.ByEircode(key)}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (the middleware is not installed).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware installed?")
	}
	return l
}
