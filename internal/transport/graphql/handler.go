// Package graphql serves the lookup operations over GraphQL. REST keeps the
// health endpoints; search, suggest, nearby, dataset and refresh are served
// here on /query.
package graphql

import (
	"log/slog"
	"net/http"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"

	"github.com/heartmarshall/tenantlookup/internal/service/dataset"
	"github.com/heartmarshall/tenantlookup/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/tenantlookup/internal/transport/graphql/resolver"
)

type snapshotSource interface {
	Current() *dataset.Snapshot
}

// NewHandler builds the /query handler. Each request gets fresh dataloaders
// backed by data.
func NewHandler(log *slog.Logger, res *resolver.Resolver, data snapshotSource) http.Handler {
	srv := gqlhandler.NewDefaultServer(NewExecutableSchema(res))
	srv.SetErrorPresenter(NewErrorPresenter(log.With("component", "graphql")))

	return dataloader.Middleware(data)(srv)
}
