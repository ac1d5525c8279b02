package payment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMap covers Latin letters that carry no combining mark under NFD
// and would otherwise be dropped instead of transliterated.
var foldMap = map[rune]rune{
	'đ': 'd', 'Đ': 'D',
	'ł': 'l', 'Ł': 'L',
	'ø': 'o', 'Ø': 'O',
	'ħ': 'h', 'Ħ': 'H',
	'ı': 'i',
	'æ': 'a', 'Æ': 'A',
	'œ': 'o', 'Œ': 'O',
	'ß': 's',
	'þ': 't', 'Þ': 'T',
	'ð': 'd', 'Ð': 'D',
	// typographic punctuation
	'‘': '\'', '’': '\'', '‚': '\'',
	'“': '"', '”': '"', '„': '"',
	'–': '-', '—': '-',
	'\u00a0': ' ',
}

func foldRune(r rune) rune {
	if folded, ok := foldMap[r]; ok {
		return folded
	}
	return r
}

// ToASCII transliterates s to printable ASCII: diacritics are removed
// ("Ježdovec" → "Jezdovec", "Đakovo" → "Dakovo") and anything that still
// falls outside 0x20..0x7E is stripped. Line breaks become spaces.
func ToASCII(s string) string {
	// Transformers keep state, so each call builds its own chain.
	t := transform.Chain(
		runes.Map(foldRune),
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	line := SingleLine(s)
	folded, _, err := transform.String(t, line)
	if err != nil {
		folded = line
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, folded)
}

// IsASCII reports whether s contains only printable ASCII characters.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// SingleLine replaces line breaks and tabs with spaces so a value can never
// split a newline-delimited payload field.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', '\v', '\f':
			return ' '
		}
		return r
	}, s)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
