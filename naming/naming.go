// Package naming turns catalog keys into identifiers for generated code.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize removes every '.', '_' or '-' that is followed by a word character
// and upper-cases that character. All other characters are kept as-is.
func Normalize(key string) string {
	var sb strings.Builder
	sb.Grow(len(key))

	for i := 0; i < len(key); {
		r, size := utf8.DecodeRuneInString(key[i:])
		if isSeparator(r) && i+size < len(key) {
			next, nextSize := utf8.DecodeRuneInString(key[i+size:])
			if isWordRune(next) {
				sb.WriteString(cases.Upper(language.Und).String(string(next)))
				i += size + nextSize
				continue
			}
		}
		sb.WriteRune(r)
		i += size
	}

	return sb.String()
}

// Capitalize upper-cases the first character of s and lower-cases the rest
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return cases.Title(language.Und).String(string(r)) + cases.Lower(language.Und).String(s[size:])
}

// IsIdentifier reports whether s is usable as an identifier in the generated
// languages: a letter or underscore followed by letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !isWordRune(r) {
			return false
		}
	}
	return true
}

func isSeparator(r rune) bool {
	return r == '.' || r == '_' || r == '-'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
