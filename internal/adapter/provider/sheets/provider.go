// Package sheets is the HTTP client for the spreadsheet-backed data source.
// The source exposes four operations selected by the "action" query
// parameter: lastmodified, the default full dump, geo and log.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/tenantlookup/internal/config"
	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/provider"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
	maxBodyBytes      = 32 << 20
)

// Provider talks to the data source over plain HTTP GET requests.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider from configuration. Outbound requests are
// throttled to one per cfg.MinInterval when it is positive.
func NewProvider(cfg config.SourceConfig, logger *slog.Logger) *Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	p := &Provider{
		baseURL:    cfg.URL,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: cfg.RetryDelay,
		log:        logger.With("adapter", "sheets"),
	}
	if p.retryDelay <= 0 {
		p.retryDelay = defaultRetryDelay
	}
	if cfg.MinInterval > 0 {
		p.limiter = rate.NewLimiter(rate.Every(cfg.MinInterval), cfg.Burst)
	}
	return p
}

// NewProviderWithURL creates an unthrottled Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		retryDelay: 10 * time.Millisecond,
		log:        logger.With("adapter", "sheets"),
	}
}

// FetchLastModified returns the server's last-modified marker.
func (p *Provider) FetchLastModified(ctx context.Context) (*provider.VersionResult, error) {
	const op = "lastmodified"

	var resp lastModifiedResponse
	if err := p.get(ctx, op, url.Values{"action": {"lastmodified"}}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, domain.NewTransportError(op, errors.New(resp.Error))
	}

	ts, err := parseTimestamp(resp.LastModified)
	if err != nil {
		return nil, domain.NewMalformedError(op, err)
	}

	p.log.DebugContext(ctx, "sheets last modified", slog.Time("last_modified", ts))
	return &provider.VersionResult{LastModified: ts}, nil
}

// FetchRecords downloads the full record set. A response without a data
// field is treated as an empty dataset.
func (p *Provider) FetchRecords(ctx context.Context) (*provider.DatasetResult, error) {
	const op = "records"

	var resp dataResponse
	if err := p.get(ctx, op, url.Values{}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, domain.NewTransportError(op, errors.New(resp.Error))
	}

	rows := resp.Data
	if rows == nil {
		rows = [][]any{}
	}

	p.log.InfoContext(ctx, "sheets dataset fetched", slog.Int("rows", len(rows)))
	return &provider.DatasetResult{Rows: rows, FetchedAt: time.Now().UTC()}, nil
}

// SearchNearby asks the source for locations within radiusMeters of the point.
// Zero matches is an empty, non-nil slice with a nil error.
func (p *Provider) SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]provider.NearbyResult, error) {
	const op = "geo"

	params := url.Values{
		"action": {"geo"},
		"lat":    {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lng":    {strconv.FormatFloat(lng, 'f', -1, 64)},
	}
	if radiusMeters > 0 {
		params.Set("radius", strconv.Itoa(radiusMeters))
	}

	var resp geoResponse
	if err := p.get(ctx, op, params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, domain.NewTransportError(op, errors.New(resp.Error))
	}

	results := make([]provider.NearbyResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, provider.NearbyResult{
			Eircode:    r.Eircode,
			Address:    r.Address,
			Lat:        float64(r.Lat),
			Lng:        float64(r.Lng),
			DistanceKm: float64(r.Distance),
		})
	}

	p.log.DebugContext(ctx, "sheets geo response",
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
		slog.Int("results", len(results)),
	)
	return results, nil
}

// LogQuery records a search query at the source. The response body is ignored.
func (p *Provider) LogQuery(ctx context.Context, query string) error {
	return p.get(ctx, "log", url.Values{"action": {"log"}, "query": {query}}, nil)
}

// get performs one logical request. When dst is nil the body is discarded.
func (p *Provider) get(ctx context.Context, op string, params url.Values, dst any) error {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return domain.NewTransportError(op, err)
		}
	}

	reqURL, err := p.buildURL(params)
	if err != nil {
		return fmt.Errorf("sheets: build url: %w", err)
	}

	resp, err := p.doWithRetry(ctx, op, reqURL)
	if err != nil {
		p.log.ErrorContext(ctx, "sheets request failed", slog.String("action", op), slog.String("error", err.Error()))
		return domain.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.NewTransportError(op, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if dst == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.NewTransportError(op, fmt.Errorf("read body: %w", err))
	}

	dec := json.NewDecoder(bytes.NewReader(unwrapEnvelope(body)))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return domain.NewMalformedError(op, fmt.Errorf("decode json: %w", err))
	}
	return nil
}

func (p *Provider) buildURL(params url.Values) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range params {
		q[k] = vs
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// doWithRetry executes a GET with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, op, reqURL string) (*http.Response, error) {
	resp, err := p.do(ctx, reqURL)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "sheets retry", slog.String("action", op), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.do(ctx, reqURL)
}

func (p *Provider) do(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return p.httpClient.Do(req)
}
