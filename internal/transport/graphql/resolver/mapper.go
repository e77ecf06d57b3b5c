package resolver

import (
	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/dataset"
	"github.com/heartmarshall/tenantlookup/internal/service/lookup"
	"github.com/heartmarshall/tenantlookup/internal/transport/graphql/model"
)

func toTenant(r domain.Record) *model.Tenant {
	synonyms := r.SynonymList()
	if synonyms == nil {
		synonyms = []string{}
	}
	return &model.Tenant{
		Card:      domain.NewCard(r),
		Synonyms:  synonyms,
		Latitude:  r.Lat,
		Longitude: r.Lng,
	}
}

func toTenants(records []domain.Record) []*model.Tenant {
	out := make([]*model.Tenant, 0, len(records))
	for _, r := range records {
		out = append(out, toTenant(r))
	}
	return out
}

func toSearchResult(res *lookup.Result) *model.SearchResult {
	suggestions := res.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return &model.SearchResult{
		Query:       res.Query,
		Mode:        model.SearchModeFromDomain(res.Mode),
		Tenants:     toTenants(res.Records),
		Suggestions: suggestions,
		Dataset:     int(res.Dataset),
	}
}

func toDataset(snap *dataset.Snapshot) *model.Dataset {
	d := &model.Dataset{
		Generation: int(snap.Generation),
		Source:     snap.Source.String(),
		Records:    len(snap.Records),
		LoadedAt:   snap.LoadedAt,
	}
	if !snap.ServerVersion.IsZero() {
		v := snap.ServerVersion
		d.ServerVersion = &v
	}
	return d
}
