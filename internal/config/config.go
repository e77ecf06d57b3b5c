package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Source    SourceConfig    `yaml:"source"`
	Cache     CacheConfig     `yaml:"cache"`
	Database  DatabaseConfig  `yaml:"database"`
	Search    SearchConfig    `yaml:"search"`
	Geo       GeoConfig       `yaml:"geo"`
	Voice     VoiceConfig     `yaml:"voice"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// SourceConfig holds the remote data source settings.
type SourceConfig struct {
	URL         string        `yaml:"url"          env:"SOURCE_URL"          env-required:"true"`
	Timeout     time.Duration `yaml:"timeout"      env:"SOURCE_TIMEOUT"      env-default:"10s"`
	RetryDelay  time.Duration `yaml:"retry_delay"  env:"SOURCE_RETRY_DELAY"  env-default:"500ms"`
	MinInterval time.Duration `yaml:"min_interval" env:"SOURCE_MIN_INTERVAL" env-default:"200ms"`
	Burst       int           `yaml:"burst"        env:"SOURCE_BURST"        env-default:"2"`
}

// Cache check-failure policies.
const (
	PolicyFailOpen   = "fail-open"
	PolicyFailClosed = "fail-closed"
)

// Cache store backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendNone     = "none"
)

// CacheConfig holds dataset cache settings.
type CacheConfig struct {
	Backend         string        `yaml:"backend"          env:"CACHE_BACKEND"          env-default:"file"`
	FilePath        string        `yaml:"file_path"        env:"CACHE_FILE_PATH"        env-default:"./data/tenant-cache.json"`
	AllowedSkew     time.Duration `yaml:"allowed_skew"     env:"CACHE_ALLOWED_SKEW"     env-default:"5s"`
	MaxAge          time.Duration `yaml:"max_age"          env:"CACHE_MAX_AGE"          env-default:"168h"`
	OnCheckFailure  string        `yaml:"on_check_failure" env:"CACHE_ON_CHECK_FAILURE" env-default:"fail-open"`
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"CACHE_REFRESH_INTERVAL" env-default:"0s"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used by the
// postgres cache backend.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// SearchConfig holds matching and suggestion settings.
type SearchConfig struct {
	StrictSynonyms  bool `yaml:"strict_synonyms"  env:"SEARCH_STRICT_SYNONYMS"  env-default:"false"`
	SuggestionLimit int  `yaml:"suggestion_limit" env:"SEARCH_SUGGESTION_LIMIT" env-default:"5"`
}

// GeoConfig holds proximity search settings.
type GeoConfig struct {
	RadiusMeters int `yaml:"radius_meters" env:"GEO_RADIUS_METERS" env-default:"250"`
}

// VoiceConfig holds voice input settings.
type VoiceConfig struct {
	DefaultLanguage string        `yaml:"default_language" env:"VOICE_DEFAULT_LANGUAGE" env-default:"en-US"`
	LogQueries      bool          `yaml:"log_queries"      env:"VOICE_LOG_QUERIES"      env-default:"true"`
	LogTimeout      time.Duration `yaml:"log_timeout"      env:"VOICE_LOG_TIMEOUT"      env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client API rate limiting settings.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}
