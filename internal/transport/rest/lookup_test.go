package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/dataset"
	"github.com/heartmarshall/tenantlookup/internal/service/lookup"
)

//go:generate moq -out lookup_service_mock_test.go -pkg rest . lookupService
//go:generate moq -out geo_service_mock_test.go -pkg rest . geoService
//go:generate moq -out dataset_service_mock_test.go -pkg rest . datasetService

func newHandler(ls *lookupServiceMock, gs *geoServiceMock, ds *datasetServiceMock) *LookupHandler {
	if ls == nil {
		ls = &lookupServiceMock{}
	}
	if gs == nil {
		gs = &geoServiceMock{}
	}
	if ds == nil {
		ds = &datasetServiceMock{}
	}
	return NewLookupHandler(ls, gs, ds, slog.Default())
}

func serve(h http.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSearch_Success(t *testing.T) {
	t.Parallel()

	ls := &lookupServiceMock{
		QueryFunc: func(_ context.Context, state lookup.State, raw string) (*lookup.Result, error) {
			records := []domain.Record{{Position: 0, FullName: "Jane Murphy", City: "Dublin", Country: "Ireland"}}
			return &lookup.Result{
				Query:       "janey",
				Mode:        state.Mode,
				Records:     records,
				Cards:       domain.NewCards(records),
				Suggestions: []string{"Jane Murphy"},
				Dataset:     3,
			}, nil
		},
	}
	h := newHandler(ls, nil, nil)

	rec := serve(h.Search, http.MethodGet, "/api/search?q=janey&mode=Name")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp searchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "name", resp.Mode)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Cards, 1)
	assert.Equal(t, "JM", resp.Cards[0].Initials)
	assert.Equal(t, []string{"Jane Murphy"}, resp.Suggestions)
	assert.Equal(t, uint64(3), resp.Dataset)

	calls := ls.QueryCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.SearchModeName, calls[0].State.Mode)
	assert.Equal(t, "janey", calls[0].Raw)
}

func TestSearch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		err      error
		wantCode int
		wantBody string
	}{
		{"bad mode", "/api/search?q=x&mode=phone", nil, http.StatusBadRequest, "validation"},
		{"no data", "/api/search?q=x", domain.ErrNoData, http.StatusServiceUnavailable, "no_data"},
		{"unexpected", "/api/search?q=x", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ls := &lookupServiceMock{
				QueryFunc: func(context.Context, lookup.State, string) (*lookup.Result, error) {
					return nil, tt.err
				},
			}
			h := newHandler(ls, nil, nil)

			rec := serve(h.Search, http.MethodGet, tt.target)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, decodeError(t, rec).Code)
		})
	}
}

func TestSearch_InternalErrorHidesDetail(t *testing.T) {
	t.Parallel()

	ls := &lookupServiceMock{
		QueryFunc: func(context.Context, lookup.State, string) (*lookup.Result, error) {
			return nil, errors.New("secret dsn leaked")
		},
	}
	rec := serve(newHandler(ls, nil, nil).Search, http.MethodGet, "/api/search?q=x")
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	ls := &lookupServiceMock{
		SuggestFunc: func(_ context.Context, mode domain.SearchMode, raw string, limit int) ([]string, error) {
			return []string{"Main St"}, nil
		},
	}
	h := newHandler(ls, nil, nil)

	rec := serve(h.Suggest, http.MethodGet, "/api/suggest?q=mai&mode=address&limit=3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"suggestions":["Main St"]}`, rec.Body.String())

	calls := ls.SuggestCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.SearchModeAddress, calls[0].Mode)
	assert.Equal(t, "mai", calls[0].Raw)
	assert.Equal(t, 3, calls[0].Limit)

	rec = serve(h.Suggest, http.MethodGet, "/api/suggest?q=mai&mode=name")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, ls.SuggestCalls()[1].Limit, "missing limit defers to the service default")
}

func TestSuggest_InvalidLimit(t *testing.T) {
	t.Parallel()

	for _, limit := range []string{"0", "-1", "ten"} {
		t.Run(limit, func(t *testing.T) {
			t.Parallel()
			ls := &lookupServiceMock{}
			rec := serve(newHandler(ls, nil, nil).Suggest, http.MethodGet, "/api/suggest?q=mai&limit="+limit)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, "validation", resp.Code)
			require.Len(t, resp.Fields, 1)
			assert.Equal(t, "limit", resp.Fields[0].Field)
			assert.Empty(t, ls.SuggestCalls())
		})
	}
}

func TestNearby_Success(t *testing.T) {
	t.Parallel()

	hits := []domain.GeoResult{{Eircode: "D01AB12", Address: "1 Main St", DistanceKm: 0.05}}
	gs := &geoServiceMock{
		SearchNearbyFunc: func(context.Context, float64, float64) ([]domain.GeoResult, error) { return hits, nil },
		RadiusFunc:       func() int { return 250 },
	}
	ls := &lookupServiceMock{
		ReconcileFunc: func(results []domain.GeoResult) []lookup.NearbyMatch {
			return []lookup.NearbyMatch{{GeoResult: results[0], Records: []domain.Record{{FullName: "Jane Murphy"}}}}
		},
	}
	h := newHandler(ls, gs, nil)

	rec := serve(h.Nearby, http.MethodGet, "/api/nearby?lat=53.3498&lng=-6.2603")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp nearbyResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 250, resp.RadiusMeters)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "D01AB12", resp.Results[0].Eircode)
	assert.Equal(t, "Jane Murphy", resp.Results[0].Records[0].FullName)

	require.Len(t, gs.SearchNearbyCalls(), 1)
	assert.Equal(t, 53.3498, gs.SearchNearbyCalls()[0].Lat)
	assert.Equal(t, -6.2603, gs.SearchNearbyCalls()[0].Lng)
	assert.Equal(t, hits, ls.ReconcileCalls()[0].Results)
}

func TestNearby_ZeroResultsIsEmptyList(t *testing.T) {
	t.Parallel()

	gs := &geoServiceMock{
		SearchNearbyFunc: func(context.Context, float64, float64) ([]domain.GeoResult, error) {
			return []domain.GeoResult{}, nil
		},
		RadiusFunc: func() int { return 250 },
	}
	ls := &lookupServiceMock{
		ReconcileFunc: func([]domain.GeoResult) []lookup.NearbyMatch { return []lookup.NearbyMatch{} },
	}

	rec := serve(newHandler(ls, gs, nil).Nearby, http.MethodGet, "/api/nearby?lat=0&lng=0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"lat":0,"lng":0,"radius_m":250,"results":[]}`, rec.Body.String())
}

func TestNearby_SourceFailureIsBadGateway(t *testing.T) {
	t.Parallel()

	gs := &geoServiceMock{
		SearchNearbyFunc: func(context.Context, float64, float64) ([]domain.GeoResult, error) {
			return nil, domain.NewTransportError("geo", errors.New("status 502"))
		},
	}

	rec := serve(newHandler(nil, gs, nil).Nearby, http.MethodGet, "/api/nearby?lat=53.3&lng=-6.2")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "source_unavailable", decodeError(t, rec).Code)
}

func TestNearby_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		wantFields []string
	}{
		{"missing both", "/api/nearby", []string{"lat", "lng"}},
		{"bad lat", "/api/nearby?lat=north&lng=1", []string{"lat"}},
		{"bad lng", "/api/nearby?lat=1&lng=", []string{"lng"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gs := &geoServiceMock{}
			rec := serve(newHandler(nil, gs, nil).Nearby, http.MethodGet, tt.target)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			var fields []string
			for _, f := range resp.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			assert.Empty(t, gs.SearchNearbyCalls())
		})
	}
}

func TestNearby_OutOfRangeFromService(t *testing.T) {
	t.Parallel()

	gs := &geoServiceMock{
		SearchNearbyFunc: func(context.Context, float64, float64) ([]domain.GeoResult, error) {
			return nil, domain.NewValidationError("lat", "must be between -90 and 90")
		},
	}

	rec := serve(newHandler(nil, gs, nil).Nearby, http.MethodGet, "/api/nearby?lat=91&lng=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	version := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ds := &datasetServiceMock{
		RefreshFunc: func(context.Context) (*dataset.Snapshot, error) {
			return &dataset.Snapshot{
				Records:       make([]domain.Record, 4),
				ServerVersion: version,
				LoadedAt:      version.Add(time.Minute),
				Source:        domain.CacheSourceRemote,
				Generation:    9,
			}, nil
		},
	}

	rec := serve(newHandler(nil, nil, ds).Refresh, http.MethodPost, "/api/refresh")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"generation": 9,
		"source": "remote",
		"records": 4,
		"server_version": "2026-03-01T09:00:00Z",
		"loaded_at": "2026-03-01T09:01:00Z"
	}`, rec.Body.String())
	assert.Len(t, ds.RefreshCalls(), 1)
}

func TestRefresh_NoDataAnywhere(t *testing.T) {
	t.Parallel()

	ds := &datasetServiceMock{
		RefreshFunc: func(context.Context) (*dataset.Snapshot, error) {
			return nil, fmt.Errorf("%w: %w", domain.ErrNoData, domain.NewTransportError("data", errors.New("timeout")))
		},
	}

	rec := serve(newHandler(nil, nil, ds).Refresh, http.MethodPost, "/api/refresh")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "no_data", decodeError(t, rec).Code)
}

func TestDataset(t *testing.T) {
	t.Parallel()

	t.Run("not loaded", func(t *testing.T) {
		t.Parallel()
		ds := &datasetServiceMock{CurrentFunc: func() *dataset.Snapshot { return nil }}
		rec := serve(newHandler(nil, nil, ds).Dataset, http.MethodGet, "/api/dataset")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unknown server version omitted", func(t *testing.T) {
		t.Parallel()
		ds := &datasetServiceMock{CurrentFunc: func() *dataset.Snapshot {
			return &dataset.Snapshot{Source: domain.CacheSourceStaleCache, Generation: 2}
		}}
		rec := serve(newHandler(nil, nil, ds).Dataset, http.MethodGet, "/api/dataset")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "stale-cache", body["source"])
		assert.NotContains(t, body, "server_version")
	})
}
