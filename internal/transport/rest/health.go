package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/dataset"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

type snapshotSource interface {
	Current() *dataset.Snapshot
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	data    snapshotSource
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler. db is nil when the cache is not
// stored in PostgreSQL.
func NewHealthHandler(data snapshotSource, db dbPinger, version string) *HealthHandler {
	return &HealthHandler{data: data, db: db, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live reports that the process is up. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready reports readiness: 200 once a snapshot is installed and the
// database (if any) answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ready := h.data.Current() != nil
	if ready && h.db != nil {
		ready = h.db.Ping(ctx) == nil
	}

	if !ready {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component status and version.
// A snapshot served from a stale cache reports "degraded" but stays 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	switch snap := h.data.Current(); {
	case snap == nil:
		components["dataset"] = CompStatus{Status: "down"}
		overallStatus = "down"
	default:
		st := CompStatus{
			Status: "ok",
			Detail: snap.Source.String() + ", " + strconv.Itoa(len(snap.Records)) + " records",
		}
		if snap.Source == domain.CacheSourceStaleCache {
			st.Status = "degraded"
			overallStatus = "degraded"
		}
		components["dataset"] = st
	}

	if h.db != nil {
		start := time.Now()
		err := h.db.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components["database"] = CompStatus{Status: "down"}
			overallStatus = "down"
		} else {
			components["database"] = CompStatus{
				Status:  "ok",
				Latency: latency.String(),
			}
		}
	}

	status := http.StatusOK
	if overallStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
