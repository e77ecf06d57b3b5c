package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Positional layout of a data source row. Index 0 is a row marker and is
// never read. These constants are used only by ParseRecord.
const (
	colFullName = iota + 1
	colPPSN
	colCountry
	colCity
	colAddress
	colEircode
	colPhone
	colUtilityAccount
	colAccountHolder
	colSynonyms
	colLat
	colLng
)

// Record is a single tenant row. Every field is optional; an empty string
// means unknown. Records have no stable identity: Position is the index in
// the batch they were fetched in and changes on every re-fetch.
type Record struct {
	Position       int      `json:"position"`
	FullName       string   `json:"full_name"`
	PPSN           string   `json:"ppsn"`
	Country        string   `json:"country"`
	City           string   `json:"city"`
	Address        string   `json:"address"`
	Eircode        string   `json:"eircode"`
	Phone          string   `json:"phone"`
	UtilityAccount string   `json:"utility_account"`
	AccountHolder  string   `json:"account_holder"`
	Synonyms       string   `json:"synonyms"`
	Lat            *float64 `json:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty"`
}

// SynonymList splits the comma-separated synonym field. Blank items are dropped.
func (r Record) SynonymList() []string {
	if strings.TrimSpace(r.Synonyms) == "" {
		return nil
	}
	parts := strings.Split(r.Synonyms, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// HasLocation reports whether both coordinates are present.
func (r Record) HasLocation() bool {
	return r.Lat != nil && r.Lng != nil
}

// ParseRecords converts raw data source rows into Records, preserving order.
func ParseRecords(rows [][]any) []Record {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		records = append(records, ParseRecord(i, row))
	}
	return records
}

// ParseRecord maps one positional row to a Record. Short rows leave the
// missing fields empty; extra trailing cells are ignored.
func ParseRecord(position int, row []any) Record {
	return Record{
		Position:       position,
		FullName:       cellString(row, colFullName),
		PPSN:           cellString(row, colPPSN),
		Country:        cellString(row, colCountry),
		City:           cellString(row, colCity),
		Address:        cellString(row, colAddress),
		Eircode:        cellString(row, colEircode),
		Phone:          cellString(row, colPhone),
		UtilityAccount: cellString(row, colUtilityAccount),
		AccountHolder:  cellString(row, colAccountHolder),
		Synonyms:       cellString(row, colSynonyms),
		Lat:            cellFloat(row, colLat),
		Lng:            cellFloat(row, colLng),
	}
}

// ToRow is the inverse of ParseRecord. It is used to persist records in the
// same shape the data source delivers them.
func (r Record) ToRow() []any {
	row := []any{
		"",
		r.FullName, r.PPSN, r.Country, r.City, r.Address, r.Eircode,
		r.Phone, r.UtilityAccount, r.AccountHolder, r.Synonyms,
	}
	if r.HasLocation() {
		row = append(row, *r.Lat, *r.Lng)
	}
	return row
}

func cellString(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	switch v := row[i].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func cellFloat(row []any, i int) *float64 {
	if i >= len(row) {
		return nil
	}
	var (
		f   float64
		err error
	)
	switch v := row[i].(type) {
	case float64:
		f = v
	case json.Number:
		f, err = v.Float64()
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return nil
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
