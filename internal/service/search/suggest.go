package search

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tenantlookup/internal/domain"
)

const (
	// DefaultSuggestionLimit caps suggestion lists when no limit is given.
	DefaultSuggestionLimit = 5
	// MinSuggestQueryLength is the shortest normalized query that gets suggestions.
	MinSuggestQueryLength = 2
)

// Suggest returns up to limit distinct completions for query.
func Suggest(records []domain.Record, mode domain.SearchMode, query string, limit int) []string {
	return NewIndex(records, Options{}).Suggest(mode, query, limit)
}

// Suggest is disabled in general mode and for queries shorter than
// MinSuggestQueryLength after normalization. Name mode draws from full names;
// address mode draws from all addresses followed by all Eircodes. Candidates
// are de-duplicated by raw value in first-seen order and kept when their
// normalized form contains the query. limit <= 0 means DefaultSuggestionLimit.
func (ix *Index) Suggest(mode domain.SearchMode, query string, limit int) []string {
	out := []string{}
	if ix == nil || mode == domain.SearchModeGeneral || !mode.IsValid() {
		return out
	}
	q := domain.Normalize(query)
	if utf8.RuneCountInString(q) < MinSuggestQueryLength {
		return out
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	seen := make(map[string]struct{})
	consider := func(raw, normalized string) bool {
		if raw == "" {
			return false
		}
		if _, dup := seen[raw]; dup {
			return false
		}
		seen[raw] = struct{}{}
		if strings.Contains(normalized, q) {
			out = append(out, raw)
		}
		return len(out) >= limit
	}

	switch mode {
	case domain.SearchModeName:
		for i, r := range ix.records {
			if consider(r.FullName, ix.rows[i].name) {
				return out
			}
		}
	case domain.SearchModeAddress:
		for i, r := range ix.records {
			if consider(r.Address, ix.rows[i].address) {
				return out
			}
		}
		for i, r := range ix.records {
			if consider(r.Eircode, ix.rows[i].eircode) {
				return out
			}
		}
	}
	return out
}
