package provider

import "time"

// DatasetResult is the full record set returned by a data source.
// Rows keep the source's positional layout; domain.ParseRecords maps them.
type DatasetResult struct {
	Rows      [][]any
	FetchedAt time.Time
}

// VersionResult is the data source's last-modified marker.
type VersionResult struct {
	LastModified time.Time
}

// NearbyResult is a single location returned by a proximity query.
type NearbyResult struct {
	Eircode    string
	Address    string
	Lat        float64
	Lng        float64
	DistanceKm float64
}
