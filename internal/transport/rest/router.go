package rest

import "net/http"

// NewRouter registers the API and health routes.
func NewRouter(lookup *LookupHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/search", lookup.Search)
	mux.HandleFunc("GET /api/suggest", lookup.Suggest)
	mux.HandleFunc("GET /api/nearby", lookup.Nearby)
	mux.HandleFunc("POST /api/refresh", lookup.Refresh)
	mux.HandleFunc("GET /api/dataset", lookup.Dataset)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	return mux
}
