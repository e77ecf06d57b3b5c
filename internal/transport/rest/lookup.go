package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/dataset"
	"github.com/heartmarshall/tenantlookup/internal/service/lookup"
)

type lookupService interface {
	Query(ctx context.Context, state lookup.State, raw string) (*lookup.Result, error)
	Suggest(ctx context.Context, mode domain.SearchMode, raw string, limit int) ([]string, error)
	Reconcile(results []domain.GeoResult) []lookup.NearbyMatch
}

type geoService interface {
	SearchNearby(ctx context.Context, lat, lng float64) ([]domain.GeoResult, error)
	Radius() int
}

type datasetService interface {
	Current() *dataset.Snapshot
	Refresh(ctx context.Context) (*dataset.Snapshot, error)
}

// LookupHandler serves the tenant lookup API.
type LookupHandler struct {
	lookup  lookupService
	geo     geoService
	dataset datasetService
	log     *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(lookup lookupService, geo geoService, dataset datasetService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{
		lookup:  lookup,
		geo:     geo,
		dataset: dataset,
		log:     logger.With("handler", "lookup"),
	}
}

type searchResponse struct {
	Query       string        `json:"query"`
	Mode        string        `json:"mode"`
	Count       int           `json:"count"`
	Cards       []domain.Card `json:"cards"`
	Suggestions []string      `json:"suggestions"`
	Dataset     uint64        `json:"dataset"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type nearbyResponse struct {
	Lat          float64              `json:"lat"`
	Lng          float64              `json:"lng"`
	RadiusMeters int                  `json:"radius_m"`
	Results      []lookup.NearbyMatch `json:"results"`
}

type datasetResponse struct {
	Generation    uint64     `json:"generation"`
	Source        string     `json:"source"`
	Records       int        `json:"records"`
	ServerVersion *time.Time `json:"server_version,omitempty"`
	LoadedAt      time.Time  `json:"loaded_at"`
}

// Search handles GET /api/search?q=&mode=.
func (h *LookupHandler) Search(w http.ResponseWriter, r *http.Request) {
	mode, err := domain.ParseSearchMode(r.URL.Query().Get("mode"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.lookup.Query(r.Context(), lookup.State{Mode: mode, Language: domain.LanguageEnglish}, r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:       res.Query,
		Mode:        res.Mode.String(),
		Count:       len(res.Cards),
		Cards:       res.Cards,
		Suggestions: res.Suggestions,
		Dataset:     res.Dataset,
	})
}

// Suggest handles GET /api/suggest?q=&mode=&limit=.
func (h *LookupHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode, err := domain.ParseSearchMode(q.Get("mode"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var limit int
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be a positive integer"))
			return
		}
	}

	suggestions, err := h.lookup.Suggest(r.Context(), mode, q.Get("q"), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestResponse{Suggestions: suggestions})
}

// Nearby handles GET /api/nearby?lat=&lng=. Zero hits is a 200 with an
// empty list; a failing source is a 502.
func (h *LookupHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	lat, latErr := parseFloat(r.URL.Query().Get("lat"))
	lng, lngErr := parseFloat(r.URL.Query().Get("lng"))

	var fieldErrs []domain.FieldError
	if latErr != nil {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "lat", Message: "must be a number"})
	}
	if lngErr != nil {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "lng", Message: "must be a number"})
	}
	if len(fieldErrs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(fieldErrs))
		return
	}

	results, err := h.geo.SearchNearby(r.Context(), lat, lng)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nearbyResponse{
		Lat:          lat,
		Lng:          lng,
		RadiusMeters: h.geo.Radius(),
		Results:      h.lookup.Reconcile(results),
	})
}

// Refresh handles POST /api/refresh. The dataset is fetched even when the
// cache is current.
func (h *LookupHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	snap, err := h.dataset.Refresh(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "dataset refreshed",
		slog.String("source", snap.Source.String()),
		slog.Int("records", len(snap.Records)),
	)
	writeJSON(w, http.StatusOK, toDatasetResponse(snap))
}

// Dataset handles GET /api/dataset.
func (h *LookupHandler) Dataset(w http.ResponseWriter, r *http.Request) {
	snap := h.dataset.Current()
	if snap == nil {
		handleError(h.log, w, r, domain.ErrNoData)
		return
	}
	writeJSON(w, http.StatusOK, toDatasetResponse(snap))
}

func toDatasetResponse(snap *dataset.Snapshot) datasetResponse {
	resp := datasetResponse{
		Generation: snap.Generation,
		Source:     snap.Source.String(),
		Records:    len(snap.Records),
		LoadedAt:   snap.LoadedAt,
	}
	if !snap.ServerVersion.IsZero() {
		v := snap.ServerVersion
		resp.ServerVersion = &v
	}
	return resp
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
