// Package dataset owns the in-memory tenant snapshot: it validates the
// persisted cache against the data source, fetches when needed and swaps the
// result in atomically.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/provider"
	"github.com/heartmarshall/tenantlookup/internal/service/cache"
	"github.com/heartmarshall/tenantlookup/internal/service/search"
)

type dataSource interface {
	FetchLastModified(ctx context.Context) (*provider.VersionResult, error)
	FetchRecords(ctx context.Context) (*provider.DatasetResult, error)
}

type cacheStore interface {
	Load(ctx context.Context) (*domain.CacheEntry, error)
	Save(ctx context.Context, entry *domain.CacheEntry) error
}

// flightKey is shared by Load and Refresh: at most one full fetch is in
// flight at a time.
const flightKey = "dataset"

type validator interface {
	Decide(entry *domain.CacheEntry, serverVersion time.Time, checkErr error) cache.Decision
}

// Snapshot is an immutable view of the dataset. It is replaced as a whole,
// never mutated.
type Snapshot struct {
	Records       []domain.Record
	Index         *search.Index
	ServerVersion time.Time
	LoadedAt      time.Time
	Source        domain.CacheSource
	Generation    uint64
}

// Service provides dataset loading and the current snapshot.
type Service struct {
	source     dataSource
	store      cacheStore
	validator  validator
	searchOpts search.Options
	log        *slog.Logger

	group      singleflight.Group
	current    atomic.Pointer[Snapshot]
	generation atomic.Uint64
	now        func() time.Time
}

// NewService creates a new Dataset service. store may be nil, in which case
// nothing is persisted and every Load fetches.
func NewService(
	log *slog.Logger,
	source dataSource,
	store cacheStore,
	validator validator,
	searchOpts search.Options,
) *Service {
	return &Service{
		source:     source,
		store:      store,
		validator:  validator,
		searchOpts: searchOpts,
		log:        log.With("service", "dataset"),
		now:        time.Now,
	}
}

// Current returns the installed snapshot or nil before the first load.
func (s *Service) Current() *Snapshot {
	return s.current.Load()
}

// Load runs the startup protocol: use the persisted cache when it is still
// fresh, fetch otherwise. Concurrent callers share one in-flight load.
func (s *Service) Load(ctx context.Context) (*Snapshot, error) {
	return s.do(ctx, "load", s.load)
}

// Refresh fetches the dataset regardless of cache freshness. A Refresh
// issued while a Load or another Refresh is running joins it and returns
// its snapshot; that operation has just validated the data against the source.
func (s *Service) Refresh(ctx context.Context) (*Snapshot, error) {
	return s.do(ctx, "refresh", s.refresh)
}

// Run refreshes the dataset every interval until ctx is cancelled.
// Failures are logged and the previous snapshot stays installed.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Load(ctx); err != nil && ctx.Err() == nil {
				s.log.WarnContext(ctx, "periodic reload failed", slog.String("error", err.Error()))
			}
		}
	}
}

func (s *Service) do(ctx context.Context, op string, fn func(context.Context, uint64) (*Snapshot, error)) (*Snapshot, error) {
	ch := s.group.DoChan(flightKey, func() (any, error) {
		gen := s.generation.Add(1)
		// The shared load must not be cancelled by the first caller going away.
		return fn(context.WithoutCancel(ctx), gen)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.log.DebugContext(ctx, "joined in-flight dataset operation", slog.String("op", op))
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	}
}

func (s *Service) load(ctx context.Context, gen uint64) (*Snapshot, error) {
	entry := s.loadCache(ctx)

	var serverVersion time.Time
	version, checkErr := s.source.FetchLastModified(ctx)
	if checkErr != nil {
		s.log.WarnContext(ctx, "version check failed", slog.String("error", checkErr.Error()))
	} else {
		serverVersion = version.LastModified
	}

	decision := s.validator.Decide(entry, serverVersion, checkErr)
	s.log.InfoContext(ctx, "cache validated",
		slog.String("state", decision.State.String()),
		slog.String("reason", string(decision.Reason)),
	)

	if decision.State == cache.StateFresh {
		return s.install(ctx, gen, entry.Records, entry.ServerVersion, domain.CacheSourceCache), nil
	}
	return s.fetch(ctx, gen, entry, serverVersion)
}

func (s *Service) refresh(ctx context.Context, gen uint64) (*Snapshot, error) {
	var serverVersion time.Time
	version, err := s.source.FetchLastModified(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "version check failed", slog.String("error", err.Error()))
	} else {
		serverVersion = version.LastModified
	}

	return s.fetch(ctx, gen, s.fallbackEntry(ctx), serverVersion)
}

// fetch downloads the full dataset. On failure it degrades to fallback when
// one exists.
func (s *Service) fetch(ctx context.Context, gen uint64, fallback *domain.CacheEntry, serverVersion time.Time) (*Snapshot, error) {
	result, err := s.source.FetchRecords(ctx)
	if err != nil {
		if fallback == nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrNoData, err)
		}
		s.log.WarnContext(ctx, "fetch failed, serving stale cache",
			slog.String("error", err.Error()),
			slog.Int("records", len(fallback.Records)),
		)
		return s.install(ctx, gen, fallback.Records, fallback.ServerVersion, domain.CacheSourceStaleCache), nil
	}

	records := domain.ParseRecords(result.Rows)
	snap := s.install(ctx, gen, records, serverVersion, domain.CacheSourceRemote)

	if s.store != nil {
		entry := &domain.CacheEntry{
			Records:       records,
			ServerVersion: serverVersion,
			StoredAt:      s.now(),
		}
		if err := s.store.Save(ctx, entry); err != nil {
			s.log.ErrorContext(ctx, "save cache", slog.String("error", err.Error()))
		}
	}
	return snap, nil
}

// install publishes a new snapshot unless a newer generation is already in place.
func (s *Service) install(ctx context.Context, gen uint64, records []domain.Record, serverVersion time.Time, source domain.CacheSource) *Snapshot {
	snap := &Snapshot{
		Records:       records,
		Index:         search.NewIndex(records, s.searchOpts),
		ServerVersion: serverVersion,
		LoadedAt:      s.now(),
		Source:        source,
		Generation:    gen,
	}

	for {
		old := s.current.Load()
		if old != nil && old.Generation > gen {
			s.log.DebugContext(ctx, "dropping late snapshot",
				slog.Uint64("generation", gen),
				slog.Uint64("installed", old.Generation),
			)
			return old
		}
		if s.current.CompareAndSwap(old, snap) {
			break
		}
	}

	s.log.InfoContext(ctx, "snapshot installed",
		slog.String("source", string(source)),
		slog.Int("records", len(records)),
		slog.Uint64("generation", gen),
	)
	return snap
}

func (s *Service) loadCache(ctx context.Context) *domain.CacheEntry {
	if s.store == nil {
		return nil
	}
	entry, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "read cache", slog.String("error", err.Error()))
		}
		return nil
	}
	return entry
}

// fallbackEntry is what a failed refresh degrades to: the installed snapshot,
// else the persisted cache.
func (s *Service) fallbackEntry(ctx context.Context) *domain.CacheEntry {
	if cur := s.current.Load(); cur != nil {
		return &domain.CacheEntry{Records: cur.Records, ServerVersion: cur.ServerVersion, StoredAt: cur.LoadedAt}
	}
	return s.loadCache(ctx)
}
