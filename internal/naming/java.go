package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// javaKeywords holds the reserved words, reserved literals and the "_"
// identifier that javac rejects as names.
var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true, "_": true,
}

// IsJavaIdentifierStart reports whether r may begin a Java identifier.
func IsJavaIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Sc, r) ||
		unicode.Is(unicode.Pc, r)
}

// IsJavaIdentifierPart reports whether r may appear after the first rune of a
// Java identifier.
func IsJavaIdentifierPart(r rune) bool {
	return IsJavaIdentifierStart(r) ||
		unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r)
}

// IsJavaKeyword reports whether s is reserved in Java source.
func IsJavaKeyword(s string) bool {
	return javaKeywords[s]
}

// KeepJavaIdentifierPartChars drops every rune that cannot appear inside a Java identifier.
// Example: "chaRacters!" -> "chaRacters"
func KeepJavaIdentifierPartChars(s string) string {
	out, _, err := transform.String(runes.Remove(runes.Predicate(notJavaIdentifierPart)), s)
	if err != nil {
		return ""
	}
	return out
}

func notJavaIdentifierPart(r rune) bool {
	return !IsJavaIdentifierPart(r)
}

// KeepJavaIdentifierChars drops leading runes that cannot start a Java
// identifier, then every remaining rune that cannot continue one.
// Example: "8if" -> "if"
// Example: "I’m using" -> "Imusing"
func KeepJavaIdentifierChars(s string) string {
	start := strings.IndexFunc(s, IsJavaIdentifierStart)
	if start < 0 {
		return ""
	}
	return KeepJavaIdentifierPartChars(s[start:])
}

// NeutralizeJavaKeyword appends "_" to s when s is a Java reserved word.
// Example: "enum" -> "enum_"
func NeutralizeJavaKeyword(s string) string {
	if IsJavaKeyword(s) {
		return s + "_"
	}
	return s
}

// IsJavaIdentifier reports whether s is a legal, non-reserved Java identifier.
func IsJavaIdentifier(s string) bool {
	if s == "" || IsJavaKeyword(s) {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsJavaIdentifierStart(r) {
				return false
			}
			continue
		}
		if !IsJavaIdentifierPart(r) {
			return false
		}
	}
	return utf8.ValidString(s)
}
