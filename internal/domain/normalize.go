package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxQueryLength bounds user input accepted by Sanitize.
const MaxQueryLength = 100

// Normalize prepares text for fuzzy comparison:
//   - lowercases and folds diacritics (Café -> cafe)
//   - drops every rune that is not a letter, digit or whitespace (underscore included)
//   - collapses whitespace runs to a single space and trims the ends
//
// Normalize is total and idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = foldAccents(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return norm.NFC.String(b.String())
}

// CleanTranscript strips punctuation and underscores from a voice transcript
// and collapses whitespace. Unlike Normalize it keeps case and diacritics.
func CleanTranscript(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || unicode.IsMark(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Sanitize truncates input to MaxQueryLength runes.
func Sanitize(s string) string {
	if utf8.RuneCountInString(s) <= MaxQueryLength {
		return s
	}
	n := 0
	for i := range s {
		if n == MaxQueryLength {
			return s[:i]
		}
		n++
	}
	return s
}

var htmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"/", "&#x2F;",
)

// EscapeHTML escapes the characters that matter when a sink interpolates
// text into markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// foldAccents decomposes and drops non-spacing marks. Recomposition happens
// after filtering in Normalize so that removed punctuation cannot change how
// neighbouring runes compose on a second pass.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
