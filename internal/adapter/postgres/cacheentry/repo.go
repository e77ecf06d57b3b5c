// Package cacheentry persists dataset snapshots in the cache_entries table.
// Each row holds one snapshot keyed by name, with the records stored as JSONB.
package cacheentry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/tenantlookup/internal/adapter/postgres"
	"github.com/heartmarshall/tenantlookup/internal/domain"
)

const (
	table     = "cache_entries"
	entity    = "cache entry"
	upsertSQL = "ON CONFLICT (key) DO UPDATE SET " +
		"records = EXCLUDED.records, " +
		"server_version = EXCLUDED.server_version, " +
		"stored_at = EXCLUDED.stored_at, " +
		"updated_at = now()"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type row struct {
	Records       []byte    `db:"records"`
	ServerVersion time.Time `db:"server_version"`
	StoredAt      time.Time `db:"stored_at"`
}

// Repo provides cache entry persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	key string
}

// New creates a repository for the default dataset key.
func New(db postgres.Querier) *Repo {
	return NewWithKey(db, domain.CacheKey)
}

// NewWithKey creates a repository that reads and writes the row named key.
func NewWithKey(db postgres.Querier, key string) *Repo {
	return &Repo{db: db, key: key}
}

// Load returns the stored entry. Returns domain.ErrNotFound if there is none.
func (r *Repo) Load(ctx context.Context) (*domain.CacheEntry, error) {
	query, args, err := builder.
		Select("records", "server_version", "stored_at").
		From(table).
		Where(sq.Eq{"key": r.key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.db, &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, r.key)
	}

	var records []domain.Record
	if err := json.Unmarshal(dst.Records, &records); err != nil {
		return nil, fmt.Errorf("%s %s: decode records: %w", entity, r.key, err)
	}

	return &domain.CacheEntry{
		Records:       records,
		ServerVersion: dst.ServerVersion.UTC(),
		StoredAt:      dst.StoredAt.UTC(),
	}, nil
}

// Save upserts the entry under the repository key.
func (r *Repo) Save(ctx context.Context, entry *domain.CacheEntry) error {
	if entry == nil {
		return errors.New("save cache entry: nil entry")
	}

	records := entry.Records
	if records == nil {
		records = []domain.Record{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%s %s: encode records: %w", entity, r.key, err)
	}

	query, args, err := builder.
		Insert(table).
		Columns("key", "records", "server_version", "stored_at").
		Values(r.key, json.RawMessage(payload), entry.ServerVersion, entry.StoredAt).
		Suffix(upsertSQL).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, r.key)
	}
	return nil
}

// Clear deletes the stored entry. Clearing an absent entry is not an error.
func (r *Repo) Clear(ctx context.Context) error {
	query, args, err := builder.
		Delete(table).
		Where(sq.Eq{"key": r.key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, r.key)
	}
	return nil
}
