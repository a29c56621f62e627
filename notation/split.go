package notation

import (
	"strings"
	"unicode"

	"github.com/erraggy/stringnotation/internal/naming"
	"github.com/erraggy/stringnotation/notationerrors"
)

// Split parses text written in notation n into words.
func Split(text string, n Notation) (Words, error) {
	return n.Split(text)
}

// FromNotation parses text written in notation n into words. It reads
// naturally in call chains:
//
//	words, err := notation.FromNotation("myVariable", notation.LowerCamelCase)
//	out, err := words.ToNotation(notation.ScreamingSnakeCase)
func FromNotation(text string, n Notation) (Words, error) {
	return n.Split(text)
}

// Split parses text written in notation n into words.
//
// LowerCamelCase, UpperCamelCase, JavaTypeName and JavaMemberName reject
// empty text and text with the wrong starting case. JavaTypeName also
// rejects anything outside [A-Za-z0-9]. The remaining notations accept any
// text and may return an empty sequence.
func (n Notation) Split(text string) (Words, error) {
	switch n {
	case LowerCamelCase, JavaMemberName:
		if strings.TrimSpace(text) == "" {
			return Words{}, n.invalidInput(text, "blank text has no starting case")
		}
		if naming.StartsUpper(text) {
			return Words{}, n.invalidInput(text, "must not start with an uppercase letter")
		}
		return wordsOf(lowerAll(splitCamel(text))), nil
	case UpperCamelCase:
		if strings.TrimSpace(text) == "" {
			return Words{}, n.invalidInput(text, "blank text has no starting case")
		}
		if naming.StartsLower(text) {
			return Words{}, n.invalidInput(text, "must not start with a lowercase letter")
		}
		return wordsOf(lowerAll(splitCamel(text))), nil
	case JavaTypeName:
		if !naming.StartsUpper(text) {
			return Words{}, n.invalidInput(text, "must start with an uppercase letter")
		}
		if !naming.IsASCIIAlphanumeric(text) {
			return Words{}, n.invalidInput(text, "may only contain the characters [A-Za-z0-9]")
		}
		return wordsOf(lowerAll(splitJavaType(text))), nil
	case NormalWords:
		return wordsOf(splitNormal(text)), nil
	case SnakeCase, ScreamingSnakeCase, JavaConstantName:
		return wordsOf(lowerAll(splitOn(text, "_"))), nil
	case JavaPackagePart:
		var parts []string
		for _, piece := range splitOn(text, "_") {
			parts = append(parts, splitCamel(piece)...)
		}
		return wordsOf(lowerAll(parts)), nil
	case JavaPackageName:
		return wordsOf(lowerAll(splitOn(text, "."))), nil
	default:
		return Words{}, n.unknownError()
	}
}

func (n Notation) invalidInput(text, message string) error {
	return &notationerrors.InvalidInputError{
		Text:     text,
		Notation: n.String(),
		Message:  message,
	}
}

// splitCamel starts a new part at every uppercase letter after the first rune
// and drops blank parts.
func splitCamel(text string) []string {
	var parts []string
	start := 0
	for i, r := range text {
		if i > start && unicode.IsUpper(r) {
			parts = appendNonBlank(parts, text[start:i])
			start = i
		}
	}
	if start < len(text) {
		parts = appendNonBlank(parts, text[start:])
	}
	return parts
}

func appendNonBlank(parts []string, part string) []string {
	if strings.TrimSpace(part) == "" {
		return parts
	}
	return append(parts, part)
}

// splitJavaType splits like splitCamel, and additionally starts a new part at
// a letter that follows a digit. Digits stay with the word before them.
func splitJavaType(text string) []string {
	var parts []string
	start := 0
	prevDigit := false
	for i, r := range text {
		isDigit := r >= '0' && r <= '9'
		if i > start && (unicode.IsUpper(r) || (prevDigit && !isDigit)) {
			parts = append(parts, text[start:i])
			start = i
		}
		prevDigit = isDigit
	}
	if start < len(text) {
		parts = append(parts, text[start:])
	}
	return parts
}

// splitNormal splits on whitespace runs and trims punctuation around each token.
func splitNormal(text string) []string {
	var parts []string
	for _, field := range strings.Fields(text) {
		if word := naming.TrimPunctuation(field); word != "" {
			parts = append(parts, naming.Lower(word))
		}
	}
	return parts
}

// splitOn splits text at sep and drops blank parts.
func splitOn(text, sep string) []string {
	var parts []string
	for _, part := range strings.Split(text, sep) {
		parts = appendNonBlank(parts, part)
	}
	return parts
}

func lowerAll(parts []string) []string {
	for i, part := range parts {
		parts[i] = naming.Lower(part)
	}
	return parts
}
