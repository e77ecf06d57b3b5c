//go:build e2e

package e2e_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tenantlookup/internal/adapter/postgres/cacheentry"
	"github.com/heartmarshall/tenantlookup/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/tenantlookup/internal/adapter/provider/sheets"
	"github.com/heartmarshall/tenantlookup/internal/config"
	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/cache"
	"github.com/heartmarshall/tenantlookup/internal/service/dataset"
	"github.com/heartmarshall/tenantlookup/internal/service/geo"
	"github.com/heartmarshall/tenantlookup/internal/service/lookup"
	"github.com/heartmarshall/tenantlookup/internal/service/search"
	gql "github.com/heartmarshall/tenantlookup/internal/transport/graphql"
	"github.com/heartmarshall/tenantlookup/internal/transport/graphql/resolver"
	"github.com/heartmarshall/tenantlookup/internal/transport/middleware"
	"github.com/heartmarshall/tenantlookup/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// sourceStub is the spreadsheet endpoint the server reads from.
// ---------------------------------------------------------------------------

type sourceStub struct {
	URL          string
	lastModified atomic.Value // string
	dataHits     atomic.Int32
	down         atomic.Bool
}

const tenantRows = `{"data":[
	["","Jane Murphy","1234567A","Ireland","Dublin","1 Main St","D01AB12","+353831234567","ACC1","Jane Murphy","Janey"],
	["","Mary Murphy","","Ireland","Cork","2 Main St","T12XY34"],
	["","John O'Brien","","Ireland","Galway","9 Quay St","H91AB12"]
]}`

func newSourceStub(t *testing.T) *sourceStub {
	t.Helper()
	s := &sourceStub{}
	s.lastModified.Store("2026-05-01T10:00:00Z")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.down.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("action") {
		case "lastmodified":
			_, _ = w.Write([]byte(`{"lastModified":"` + s.lastModified.Load().(string) + `"}`))
		case "geo":
			_, _ = w.Write([]byte(`{"results":[{"eircode":"D01 AB12","address":"1 Main St","lat":53.35,"lng":-6.26,"distance":0.04}]}`))
		case "log":
			_, _ = w.Write([]byte(`{"ok":true}`))
		default:
			s.dataHits.Add(1)
			_, _ = w.Write([]byte(tenantRows))
		}
	}))
	t.Cleanup(srv.Close)
	s.URL = srv.URL
	return s
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL     string
	Client  *http.Client
	Dataset *dataset.Service
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// newCacheKey gives each test its own row in the shared cache_entries table.
func newCacheKey() string {
	return domain.CacheKey + "-" + testhelper.UniqueSuffix()
}

// startServer bootstraps the application stack against the source stub and
// a PostgreSQL cache store, then runs the startup load.
func startServer(t *testing.T, pool *pgxpool.Pool, source *sourceStub, cacheKey string) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	provider := sheets.NewProviderWithURL(source.URL, logger)
	store := cacheentry.NewWithKey(pool, cacheKey)
	validator := cache.NewValidator(config.CacheConfig{
		AllowedSkew:    5 * time.Second,
		OnCheckFailure: config.PolicyFailOpen,
	})

	ds := dataset.NewService(logger, provider, store, validator, search.Options{})
	_, err := ds.Load(context.Background())
	require.NoError(t, err)

	lk := lookup.NewService(logger, ds, config.SearchConfig{SuggestionLimit: 5})
	geoSvc := geo.NewService(logger, provider, 0)
	router := rest.NewRouter(
		rest.NewLookupHandler(lk, geoSvc, ds, logger),
		rest.NewHealthHandler(ds, pool, "test-version"),
	)

	gqlHandler := gql.NewHandler(logger, resolver.NewResolver(logger, lk, geoSvc, ds), ds)
	router.Handle("POST /query", gqlHandler)
	router.Handle("OPTIONS /query", gqlHandler)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         86400,
		}),
		limiter.Limit(600),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Dataset: ds}
}

func setupTestServer(t *testing.T) (*testServer, *sourceStub) {
	t.Helper()
	source := newSourceStub(t)
	return startServer(t, testhelper.SetupTestDB(t), source, newCacheKey()), source
}
