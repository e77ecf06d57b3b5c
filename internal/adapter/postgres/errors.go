package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/tenantlookup/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// Context errors are wrapped but never mapped to a domain error.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", "23514", "22P02": // not_null_violation, check_violation, invalid_text_representation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		case "42P01": // undefined_table
			return fmt.Errorf("%s %s: schema not migrated: %w", entity, key, err)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, key, err)
}
