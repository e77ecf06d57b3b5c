// Package cache decides whether a persisted dataset snapshot can be used
// without re-fetching it from the data source.
package cache

import (
	"time"

	"github.com/heartmarshall/tenantlookup/internal/config"
	"github.com/heartmarshall/tenantlookup/internal/domain"
)

// State is the validity of a cached snapshot.
type State string

const (
	StateFresh State = "FRESH"
	StateStale State = "STALE"
)

func (s State) String() string { return string(s) }

// Reason explains a Decision.
type Reason string

const (
	ReasonNoCache         Reason = "no-cache"
	ReasonUpToDate        Reason = "up-to-date"
	ReasonModified        Reason = "modified"
	ReasonCheckFailed     Reason = "check-failed"
	ReasonCheckFailedUsed Reason = "check-failed-cache-used"
	ReasonTooOld          Reason = "check-failed-cache-too-old"
)

// Decision is the outcome of validating a cache entry.
type Decision struct {
	State  State
	Reason Reason
}

// Validator applies the freshness rule: a cache is FRESH iff
// serverVersion <= cachedVersion + AllowedSkew.
type Validator struct {
	allowedSkew time.Duration
	maxAge      time.Duration
	failClosed  bool
	now         func() time.Time
}

// NewValidator creates a Validator from cache configuration.
func NewValidator(cfg config.CacheConfig) *Validator {
	return &Validator{
		allowedSkew: cfg.AllowedSkew,
		maxAge:      cfg.MaxAge,
		failClosed:  cfg.OnCheckFailure == config.PolicyFailClosed,
		now:         time.Now,
	}
}

// IsFresh is the bare freshness rule.
func (v *Validator) IsFresh(serverVersion, cachedVersion time.Time) bool {
	return !serverVersion.After(cachedVersion.Add(v.allowedSkew))
}

// Decide validates entry against the server's last-modified marker.
// checkErr is the error from fetching that marker, if any; serverVersion is
// ignored when it is set.
//
// When the check fails, the fail-open policy reports STALE so the caller
// re-fetches. The fail-closed policy keeps the cache if it was stored less
// than MaxAge ago.
func (v *Validator) Decide(entry *domain.CacheEntry, serverVersion time.Time, checkErr error) Decision {
	if entry == nil {
		return Decision{State: StateStale, Reason: ReasonNoCache}
	}

	if checkErr != nil {
		if !v.failClosed {
			return Decision{State: StateStale, Reason: ReasonCheckFailed}
		}
		if v.now().Sub(entry.StoredAt) < v.maxAge {
			return Decision{State: StateFresh, Reason: ReasonCheckFailedUsed}
		}
		return Decision{State: StateStale, Reason: ReasonTooOld}
	}

	if v.IsFresh(serverVersion, entry.ServerVersion) {
		return Decision{State: StateFresh, Reason: ReasonUpToDate}
	}
	return Decision{State: StateStale, Reason: ReasonModified}
}
