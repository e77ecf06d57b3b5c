package search

import (
	"strings"

	"github.com/heartmarshall/tenantlookup/internal/domain"
)

// Search returns the records matching query in the given mode, in input
// order. A query that normalizes to the empty string matches nothing.
func Search(records []domain.Record, mode domain.SearchMode, query string) []domain.Record {
	return NewIndex(records, Options{}).Search(mode, query)
}

// Search filters the index. It never fails; no match is an empty slice.
func (ix *Index) Search(mode domain.SearchMode, query string) []domain.Record {
	out := []domain.Record{}
	q := domain.Normalize(query)
	if q == "" || ix == nil {
		return out
	}

	for i := range ix.rows {
		if ix.matches(&ix.rows[i], mode, q) {
			out = append(out, ix.records[i])
		}
	}
	return out
}

func (ix *Index) matches(row *normalizedRow, mode domain.SearchMode, q string) bool {
	switch mode {
	case domain.SearchModeName:
		return contains(row.name, q) || ix.synonymMatch(row, q)
	case domain.SearchModeAddress:
		return contains(row.address, q) || contains(row.eircode, q)
	default:
		return contains(row.name, q) ||
			contains(row.ppsn, q) ||
			contains(row.country, q) ||
			contains(row.city, q) ||
			contains(row.address, q) ||
			contains(row.eircode, q) ||
			contains(row.phone, q) ||
			contains(row.utilityAccount, q) ||
			ix.synonymMatch(row, q)
	}
}

// synonymMatch reports whether the query and any synonym contain one
// another, or are equal under StrictSynonyms.
func (ix *Index) synonymMatch(row *normalizedRow, q string) bool {
	for _, syn := range row.synonyms {
		if ix.opts.StrictSynonyms {
			if syn == q {
				return true
			}
			continue
		}
		if strings.Contains(syn, q) || strings.Contains(q, syn) {
			return true
		}
	}
	return false
}

func contains(field, q string) bool {
	return field != "" && strings.Contains(field, q)
}
