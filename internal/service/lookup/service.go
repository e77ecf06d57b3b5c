// Package lookup answers tenant queries against the current dataset snapshot.
package lookup

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tenantlookup/internal/config"
	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/dataset"
	"github.com/heartmarshall/tenantlookup/internal/service/search"
)

type snapshotSource interface {
	Current() *dataset.Snapshot
}

// Result is the answer to one query.
type Result struct {
	Query       string
	Mode        domain.SearchMode
	Records     []domain.Record
	Cards       []domain.Card
	Suggestions []string
	// Dataset is the generation of the snapshot the query ran against.
	Dataset uint64
	// Generation is the session generation the query was issued under.
	// Zero for queries issued outside a Session.
	Generation uint64
}

// NearbyMatch pairs a geo hit with the records sharing its Eircode.
type NearbyMatch struct {
	domain.GeoResult
	Records []domain.Record `json:"records"`
}

// Service provides search, suggestions and geo reconciliation over the
// installed snapshot.
type Service struct {
	data            snapshotSource
	suggestionLimit int
	log             *slog.Logger
}

// NewService creates a new Lookup service.
func NewService(log *slog.Logger, data snapshotSource, cfg config.SearchConfig) *Service {
	limit := cfg.SuggestionLimit
	if limit <= 0 {
		limit = search.DefaultSuggestionLimit
	}
	return &Service{
		data:            data,
		suggestionLimit: limit,
		log:             log.With("service", "lookup"),
	}
}

// Query searches the current snapshot. It fails with domain.ErrNoData
// before the first snapshot is installed and with a validation error for an
// unknown mode. An empty query is not an error; it matches nothing.
func (s *Service) Query(ctx context.Context, state State, raw string) (*Result, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	mode, err := checkMode(state.Mode)
	if err != nil {
		return nil, err
	}

	q := domain.Sanitize(strings.TrimSpace(raw))
	records := snap.Index.Search(mode, q)

	s.log.DebugContext(ctx, "query",
		slog.String("mode", mode.String()),
		slog.Int("matches", len(records)),
		slog.Uint64("dataset", snap.Generation),
	)

	return &Result{
		Query:       q,
		Mode:        mode,
		Records:     records,
		Cards:       domain.NewCards(records),
		Suggestions: snap.Index.Suggest(mode, q, s.suggestionLimit),
		Dataset:     snap.Generation,
	}, nil
}

// Suggest returns completions for a partial query. limit <= 0 uses the
// configured limit.
func (s *Service) Suggest(ctx context.Context, mode domain.SearchMode, raw string, limit int) ([]string, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	mode, err = checkMode(mode)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.suggestionLimit
	}
	return snap.Index.Suggest(mode, domain.Sanitize(strings.TrimSpace(raw)), limit), nil
}

// Reconcile attaches dataset records to geo hits by Eircode. Hits with no
// matching record are kept with an empty record list.
func (s *Service) Reconcile(results []domain.GeoResult) []NearbyMatch {
	var ix *search.Index
	if snap := s.data.Current(); snap != nil {
		ix = snap.Index
	}
	out := make([]NearbyMatch, 0, len(results))
	for _, r := range results {
		out = append(out, NearbyMatch{GeoResult: r, Records: ix.ByEircode(r.Eircode)})
	}
	return out
}

func (s *Service) snapshot() (*dataset.Snapshot, error) {
	snap := s.data.Current()
	if snap == nil {
		return nil, domain.ErrNoData
	}
	return snap, nil
}

func checkMode(mode domain.SearchMode) (domain.SearchMode, error) {
	if mode == "" {
		return domain.SearchModeGeneral, nil
	}
	if !mode.IsValid() {
		return "", domain.NewValidationError("mode", "must be one of general, name, address")
	}
	return mode, nil
}
