package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/tenantlookup/pkg/ctxutil"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup of idle
// clients. Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go rl.cleanup(cleanupInterval)
	}
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call more
// than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows maxPerMinute requests per client
// with a burst of the same size. The client is the IP stored by ClientIP,
// or RemoteAddr when that middleware is not installed.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(maxPerMinute))
	retryAfter := strconv.Itoa(int(60/maxPerMinute) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ctxutil.ClientIPFromCtx(r.Context())
			if key == "" {
				key = remoteIP(r)
			}

			if !rl.limiter(key, every, maxPerMinute).Allow() {
				w.Header().Set("Retry-After", retryAfter)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded","code":"rate_limited"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) limiter(key string, every rate.Limit, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(every, burst)}
		rl.clients[key] = c
	}
	c.lastSeen = rl.now()
	return c.limiter
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > limiterIdleTTL {
			delete(rl.clients, key)
		}
	}
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}
