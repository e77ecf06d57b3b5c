// Package model holds the GraphQL representations of lookup results.
package model

import (
	"time"

	"github.com/heartmarshall/tenantlookup/internal/domain"
)

// SearchMode is the GraphQL enum for domain.SearchMode.
type SearchMode string

const (
	SearchModeGeneral SearchMode = "GENERAL"
	SearchModeName    SearchMode = "NAME"
	SearchModeAddress SearchMode = "ADDRESS"
)

// IsValid reports whether m is a declared enum value.
func (m SearchMode) IsValid() bool {
	switch m {
	case SearchModeGeneral, SearchModeName, SearchModeAddress:
		return true
	}
	return false
}

// Domain converts the enum to a domain.SearchMode.
func (m SearchMode) Domain() domain.SearchMode {
	switch m {
	case SearchModeName:
		return domain.SearchModeName
	case SearchModeAddress:
		return domain.SearchModeAddress
	default:
		return domain.SearchModeGeneral
	}
}

// SearchModeFromDomain converts a domain.SearchMode to the enum.
func SearchModeFromDomain(m domain.SearchMode) SearchMode {
	switch m {
	case domain.SearchModeName:
		return SearchModeName
	case domain.SearchModeAddress:
		return SearchModeAddress
	default:
		return SearchModeGeneral
	}
}

// Tenant is a record in display form plus its raw synonyms and coordinates.
type Tenant struct {
	domain.Card
	Synonyms  []string
	Latitude  *float64
	Longitude *float64
}

type SearchResult struct {
	Query       string
	Mode        SearchMode
	Tenants     []*Tenant
	Suggestions []string
	Dataset     int
}

// NearbyMatch is a geo hit. Its tenants are resolved per request through the
// Eircode dataloader.
type NearbyMatch struct {
	Eircode    string
	Address    string
	Latitude   float64
	Longitude  float64
	DistanceKm float64
}

type NearbyResult struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Results      []*NearbyMatch
}

type Dataset struct {
	Generation    int
	Source        string
	Records       int
	ServerVersion *time.Time
	LoadedAt      time.Time
}
