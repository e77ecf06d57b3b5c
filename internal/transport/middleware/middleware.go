// Package middleware holds the HTTP middleware stack of the lookup API.
package middleware

import (
	"net"
	"net/http"

	"github.com/heartmarshall/tenantlookup/pkg/ctxutil"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that the first one given is outermost:
// Chain(a, b)(h) serves as a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		h := final
		for i := range mws {
			h = mws[len(mws)-1-i](h)
		}
		return h
	}
}

// ClientIP stores the caller's address in the request context. The port is
// dropped; proxy headers are not trusted.
func ClientIP() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxutil.WithClientIP(r.Context(), remoteIP(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
