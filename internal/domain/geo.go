package domain

import (
	"fmt"
	"math"
)

// DefaultRadiusMeters is the proximity radius used by nearby searches.
const DefaultRadiusMeters = 250

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks that both components are finite and within range.
func (c Coordinate) Validate() error {
	var errs []FieldError
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || c.Lat < -90 || c.Lat > 90 {
		errs = append(errs, FieldError{Field: "lat", Message: "must be a finite number between -90 and 90"})
	}
	if math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) || c.Lng < -180 || c.Lng > 180 {
		errs = append(errs, FieldError{Field: "lng", Message: "must be a finite number between -180 and 180"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// GeoResult is a nearby location reported by the data source.
type GeoResult struct {
	Eircode    string  `json:"eircode"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	DistanceKm float64 `json:"distance_km"`
}
