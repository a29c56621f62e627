package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower converts s to lowercase using root-locale case mapping.
// Example: "ÜberName" -> "übername"
func Lower(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}

// Upper converts s to uppercase using root-locale case mapping.
// Example: "user_id" -> "USER_ID"
func Upper(s string) string {
	if s == "" {
		return ""
	}
	return cases.Upper(language.Und).String(s)
}

// Capitalize uppercases the first rune of s and lowercases the rest.
// The first rune maps to exactly one rune, so a letter without a single
// uppercase form is kept as is.
// Example: "upperCase" -> "Uppercase"
// Example: "4you" -> "4you"
// Example: "ßa" -> "ßa"
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + Lower(s[size:])
}

// IsLower reports whether s is non-empty and already in lowercase form.
func IsLower(s string) bool {
	return s != "" && Lower(s) == s
}

// StartsUpper reports whether the first rune of s is an uppercase letter.
func StartsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// StartsLower reports whether the first rune of s is a lowercase letter.
func StartsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsLower(r)
}

// IsWordRune reports whether r counts as word content rather than punctuation.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// TrimPunctuation removes leading and trailing runes that are neither
// letters nor digits. Inner punctuation is kept.
// Example: "\"You!\"" -> "You"
// Example: "I’m" -> "I’m"
func TrimPunctuation(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !IsWordRune(r)
	})
}

// IsASCIIAlphanumeric reports whether every rune of s is in [A-Za-z0-9].
func IsASCIIAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
