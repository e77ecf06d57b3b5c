package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Source.validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}

	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	if c.Cache.Backend == BackendPostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required when cache.backend is %q", BackendPostgres)
	}

	if c.Search.SuggestionLimit <= 0 {
		return fmt.Errorf("search.suggestion_limit must be > 0 (got %d)", c.Search.SuggestionLimit)
	}

	if c.Geo.RadiusMeters <= 0 {
		return fmt.Errorf("geo.radius_meters must be > 0 (got %d)", c.Geo.RadiusMeters)
	}

	switch c.Voice.DefaultLanguage {
	case "en-US", "uk-UA":
	default:
		return fmt.Errorf("voice.default_language must be en-US or uk-UA (got %q)", c.Voice.DefaultLanguage)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (s *SourceConfig) validate() error {
	u, err := url.Parse(s.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("url must be an absolute http(s) URL (got %q)", s.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https (got %q)", u.Scheme)
	}
	if s.MinInterval > 0 && s.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 when min_interval is set (got %d)", s.Burst)
	}
	return nil
}

func (c *CacheConfig) validate() error {
	switch c.Backend {
	case BackendFile:
		if strings.TrimSpace(c.FilePath) == "" {
			return fmt.Errorf("file_path is required for the file backend")
		}
	case BackendPostgres, BackendNone:
	default:
		return fmt.Errorf("backend must be one of file, postgres, none (got %q)", c.Backend)
	}

	if c.AllowedSkew < 0 {
		return fmt.Errorf("allowed_skew must be >= 0 (got %s)", c.AllowedSkew)
	}

	switch c.OnCheckFailure {
	case PolicyFailOpen, PolicyFailClosed:
	default:
		return fmt.Errorf("on_check_failure must be %s or %s (got %q)", PolicyFailOpen, PolicyFailClosed, c.OnCheckFailure)
	}

	if c.OnCheckFailure == PolicyFailClosed && c.MaxAge <= 0 {
		return fmt.Errorf("max_age must be > 0 with the %s policy", PolicyFailClosed)
	}

	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh_interval must be >= 0 (got %s)", c.RefreshInterval)
	}

	return nil
}
