// Package search implements per-mode record filtering and suggestion lookup
// over an in-memory record set.
package search

import (
	"strings"

	"github.com/heartmarshall/tenantlookup/internal/domain"
)

// Options tunes matching behaviour.
type Options struct {
	// StrictSynonyms requires a synonym to equal the query instead of the
	// default bidirectional containment.
	StrictSynonyms bool
}

// normalizedRow holds the normalized form of every searchable field of one record.
type normalizedRow struct {
	name           string
	ppsn           string
	country        string
	city           string
	address        string
	eircode        string
	phone          string
	utilityAccount string
	synonyms       []string
}

// Index is an immutable record set with its normalized rows. Build a new
// Index whenever the record set changes.
type Index struct {
	records []domain.Record
	rows    []normalizedRow
	opts    Options
}

// NewIndex normalizes every record once. The records slice is retained and
// must not be modified afterwards.
func NewIndex(records []domain.Record, opts Options) *Index {
	rows := make([]normalizedRow, len(records))
	for i, r := range records {
		rows[i] = normalizeRecord(r)
	}
	return &Index{records: records, rows: rows, opts: opts}
}

func normalizeRecord(r domain.Record) normalizedRow {
	row := normalizedRow{
		name:           domain.Normalize(r.FullName),
		ppsn:           domain.Normalize(r.PPSN),
		country:        domain.Normalize(r.Country),
		city:           domain.Normalize(r.City),
		address:        domain.Normalize(r.Address),
		eircode:        domain.Normalize(r.Eircode),
		phone:          domain.Normalize(r.Phone),
		utilityAccount: domain.Normalize(r.UtilityAccount),
	}
	for _, syn := range r.SynonymList() {
		if n := domain.Normalize(syn); n != "" {
			row.synonyms = append(row.synonyms, n)
		}
	}
	return row
}

// Len returns the number of indexed records.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.records)
}

// Records returns the indexed records in their original order.
func (ix *Index) Records() []domain.Record {
	if ix == nil {
		return nil
	}
	return ix.records
}

// ByEircode returns records whose Eircode equals the given code, ignoring
// case, spacing and punctuation.
func (ix *Index) ByEircode(eircode string) []domain.Record {
	want := compact(domain.Normalize(eircode))
	out := []domain.Record{}
	if want == "" || ix == nil {
		return out
	}
	for i, row := range ix.rows {
		if compact(row.eircode) == want {
			out = append(out, ix.records[i])
		}
	}
	return out
}

func compact(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
