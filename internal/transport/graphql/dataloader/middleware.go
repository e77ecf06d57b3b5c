package dataloader

import "net/http"

// Middleware creates per-request Loaders and stores them in the request context.
func Middleware(data snapshotSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(data))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
