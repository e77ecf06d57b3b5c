package domain

import "strings"

// SearchMode selects which record fields a query is tested against.
type SearchMode string

const (
	SearchModeGeneral SearchMode = "general"
	SearchModeName    SearchMode = "name"
	SearchModeAddress SearchMode = "address"
)

func (m SearchMode) String() string { return string(m) }

func (m SearchMode) IsValid() bool {
	switch m {
	case SearchModeGeneral, SearchModeName, SearchModeAddress:
		return true
	}
	return false
}

// ParseSearchMode parses a mode name case-insensitively. An empty string
// yields the default general mode.
func ParseSearchMode(s string) (SearchMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SearchModeGeneral, nil
	}
	m := SearchMode(s)
	if !m.IsValid() {
		return "", NewValidationError("mode", "must be one of general, name, address")
	}
	return m, nil
}

// Next cycles general -> name -> address -> general.
func (m SearchMode) Next() SearchMode {
	switch m {
	case SearchModeGeneral:
		return SearchModeName
	case SearchModeName:
		return SearchModeAddress
	default:
		return SearchModeGeneral
	}
}

// Language is a recognition locale tag.
type Language string

const (
	LanguageEnglish   Language = "en-US"
	LanguageUkrainian Language = "uk-UA"
)

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageUkrainian
}

// Toggle switches between the two supported recognition languages.
func (l Language) Toggle() Language {
	if l == LanguageUkrainian {
		return LanguageEnglish
	}
	return LanguageUkrainian
}

// CacheSource tells where the active dataset came from.
type CacheSource string

const (
	CacheSourceCache      CacheSource = "cache"
	CacheSourceRemote     CacheSource = "remote"
	CacheSourceStaleCache CacheSource = "stale-cache"
)

func (s CacheSource) String() string { return string(s) }
