package domain

import (
	"strings"
	"unicode"
)

// Card is the display form of a Record handed to a rendering sink.
type Card struct {
	Position       int    `json:"position"`
	Initials       string `json:"initials"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Address        string `json:"address"`
	Eircode        string `json:"eircode"`
	Phone          string `json:"phone"`
	PPSN           string `json:"ppsn"`
	UtilityAccount string `json:"utility_account"`
	AccountHolder  string `json:"account_holder"`
}

// NewCard builds a Card. Empty fields become "Unknown".
func NewCard(r Record) Card {
	return Card{
		Position:       r.Position,
		Initials:       Initials(r.FullName),
		Name:           orUnknown(r.FullName),
		Location:       orUnknown(r.City) + ", " + orUnknown(r.Country),
		Address:        orUnknown(r.Address),
		Eircode:        orUnknown(r.Eircode),
		Phone:          FormatPhone(r.Phone),
		PPSN:           orUnknown(r.PPSN),
		UtilityAccount: orUnknown(r.UtilityAccount),
		AccountHolder:  orUnknown(r.AccountHolder),
	}
}

// NewCards maps records to cards, keeping order.
func NewCards(records []Record) []Card {
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, NewCard(r))
	}
	return cards
}

// Initials returns the uppercased first letters of the first and last words
// of a name. A single-word name repeats its first letter. Empty names give "?".
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "?"
	}
	first := firstRune(words[0])
	last := firstRune(words[len(words)-1])
	return strings.ToUpper(string([]rune{first, last}))
}

func firstRune(s string) rune {
	for _, r := range s {
		return unicode.ToUpper(r)
	}
	return '?'
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unknown
	}
	return s
}
