package sheets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// lastModifiedResponse is the payload of action=lastmodified.
type lastModifiedResponse struct {
	LastModified json.RawMessage `json:"lastModified"`
	Error        string          `json:"error"`
}

// dataResponse is the payload of the default action.
type dataResponse struct {
	Data  [][]any `json:"data"`
	Error string  `json:"error"`
}

// geoResponse is the payload of action=geo.
type geoResponse struct {
	Results []apiGeoResult `json:"results"`
	Error   string         `json:"error"`
}

// apiGeoResult is one nearby location. Numeric fields may arrive as strings.
type apiGeoResult struct {
	Eircode  string    `json:"eircode"`
	Address  string    `json:"address"`
	Lat      flexFloat `json:"lat"`
	Lng      flexFloat `json:"lng"`
	Distance flexFloat `json:"distance"`
}

// flexFloat accepts a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", s, err)
	}
	*f = flexFloat(v)
	return nil
}

// parseTimestamp reads an ISO-8601 string or a Unix millisecond number.
func parseTimestamp(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, fmt.Errorf("lastModified missing")
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, err
		}
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
		if err != nil {
			return time.Time{}, fmt.Errorf("parse lastModified %q: %w", s, err)
		}
		return t.UTC(), nil
	}

	ms, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse lastModified %s: %w", raw, err)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// callbackEnvelope matches the legacy script-tag response: name({...});
var callbackEnvelope = regexp.MustCompile(`(?s)^[A-Za-z_$][\w$.]*\s*\((.*)\)\s*;?$`)

// unwrapEnvelope strips a callback wrapper if present. Plain JSON passes through.
func unwrapEnvelope(body []byte) []byte {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] == '{' || body[0] == '[' {
		return body
	}
	if m := callbackEnvelope.FindSubmatch(body); m != nil {
		return bytes.TrimSpace(m[1])
	}
	return body
}
