package cli

import (
	"strings"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/lookup"
)

func (r *REPL) renderResult(res *lookup.Result) {
	if res.Query == "" {
		return
	}
	if len(res.Cards) == 0 {
		r.printf("No matches for %q.\n", res.Query)
	} else {
		r.printf("%d match(es) for %q:\n", len(res.Cards), res.Query)
		for _, c := range res.Cards {
			r.renderCard(c)
		}
	}
	if len(res.Suggestions) > 0 {
		r.printf("Suggestions: %s\n", strings.Join(res.Suggestions, ", "))
	}
}

func (r *REPL) renderCard(c domain.Card) {
	r.printf("\n  [%s] %s\n", c.Initials, c.Name)
	r.printf("       %s\n", c.Location)
	r.printf("       Address: %s, %s\n", c.Address, c.Eircode)
	r.printf("       Phone: %s   PPSN: %s\n", c.Phone, c.PPSN)
	r.printf("       Utility: %s (%s)\n", c.UtilityAccount, c.AccountHolder)
}

func (r *REPL) renderNearby(matches []lookup.NearbyMatch, radius int) {
	if len(matches) == 0 {
		r.printf("No tenants found within %d m.\n", radius)
		return
	}
	r.printf("%d location(s) within %d m:\n", len(matches), radius)
	for _, m := range matches {
		names := make([]string, 0, len(m.Records))
		for _, rec := range m.Records {
			names = append(names, rec.FullName)
		}
		who := "no matching tenant"
		if len(names) > 0 {
			who = strings.Join(names, ", ")
		}
		r.printf("  %6.2f km  %-8s  %s  (%s)\n", m.DistanceKm, m.Eircode, m.Address, who)
	}
}
