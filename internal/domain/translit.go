package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// numberWords maps Ukrainian and Russian number words to digits.
// Keys are lowercase and use the ASCII apostrophe.
var numberWords = map[string]string{
	"один": "1", "два": "2", "три": "3",
	"чотири": "4", "четыре": "4",
	"п'ять": "5", "пять": "5",
	"шість": "6", "шесть": "6",
	"сім": "7", "семь": "7",
	"вісім": "8", "восемь": "8",
	"дев'ять": "9", "девять": "9",
	"десять": "10",
	"перший": "1", "первый": "1",
	"другий": "2", "второй": "2",
	"третій": "3", "третий": "3",
}

var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g",
	'д': "d", 'е': "e", 'є': "ye", 'ж': "zh", 'з': "z", 'и': "y",
	'і': "i", 'ї': "yi", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh",
	'щ': "shch", 'ю': "yu", 'я': "ya", 'ы': "y", 'э': "e",
	'ь': "", 'ъ': "",
	'’': "", 'ʼ': "",
}

var ukrainianLower = cases.Lower(language.Ukrainian)

// Transliterate converts Cyrillic input to Latin in two passes. First, whole
// number words ("один", "п'ять", "третій") become digits, matched
// case-insensitively on word boundaries. Then each Cyrillic rune is mapped
// through a fixed table, one rune at a time. Runes outside the table are kept,
// so pure ASCII input is returned unchanged. Mapped output is lowercase.
func Transliterate(s string) string {
	if s == "" {
		return ""
	}
	rs := []rune(replaceNumberWords(s))

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range rs {
		if r == '\'' || r == '`' {
			// Apostrophes inside Cyrillic words are dropped like the soft sign.
			if (i > 0 && isCyrillic(rs[i-1])) || (i+1 < len(rs) && isCyrillic(rs[i+1])) {
				continue
			}
			b.WriteRune(r)
			continue
		}
		if latin, ok := cyrillicToLatin[unicode.ToLower(r)]; ok {
			b.WriteString(latin)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func replaceNumberWords(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(rs); {
		if !isWordRune(rs[i]) {
			b.WriteRune(rs[i])
			i++
			continue
		}
		j := i + 1
		for j < len(rs) {
			if isWordRune(rs[j]) {
				j++
				continue
			}
			if isApostrophe(rs[j]) && j+1 < len(rs) && isWordRune(rs[j+1]) {
				j++
				continue
			}
			break
		}
		word := string(rs[i:j])
		if digit, ok := numberWords[foldNumberWord(word)]; ok {
			b.WriteString(digit)
		} else {
			b.WriteString(word)
		}
		i = j
	}
	return b.String()
}

func foldNumberWord(w string) string {
	w = ukrainianLower.String(w)
	return strings.Map(func(r rune) rune {
		if isApostrophe(r) {
			return '\''
		}
		return r
	}, w)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '`' || r == '’' || r == 'ʼ'
}

func isCyrillic(r rune) bool {
	return unicode.Is(unicode.Cyrillic, r)
}
