package domain

import "time"

// CacheKey is the single key under which the dataset snapshot is persisted.
const CacheKey = "tenantData"

// CacheEntry is a persisted dataset snapshot. It is always written whole.
type CacheEntry struct {
	Records       []Record  `json:"records"`
	ServerVersion time.Time `json:"server_version"`
	StoredAt      time.Time `json:"stored_at"`
}
