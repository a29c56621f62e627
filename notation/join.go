package notation

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/stringnotation/internal/naming"
	"github.com/erraggy/stringnotation/notationerrors"
)

// Join renders words in notation n.
func Join(w Words, n Notation) (string, error) {
	return n.Join(w)
}

// Join renders words in notation n.
//
// Every notation refuses an empty sequence with an
// [notationerrors.EmptySequenceError]. The Java notations drop characters
// that are illegal in identifiers, append "_" to reserved words, and fail with
// an [notationerrors.InvalidInputError] when no legal identifier remains.
func (n Notation) Join(w Words) (string, error) {
	if !n.IsValid() {
		return "", n.unknownError()
	}
	if w.IsEmpty() {
		return "", &notationerrors.EmptySequenceError{Notation: n.String()}
	}

	switch n {
	case LowerCamelCase:
		return joinMapped(w.parts, "", func(i int, part string) string {
			if i == 0 {
				return naming.Lower(part)
			}
			return naming.Capitalize(part)
		}), nil
	case UpperCamelCase:
		return joinMapped(w.parts, "", func(_ int, part string) string {
			return naming.Capitalize(part)
		}), nil
	case NormalWords:
		return joinMapped(w.parts, " ", func(_ int, part string) string {
			return naming.Lower(part)
		}), nil
	case SnakeCase:
		return joinMapped(w.parts, "_", func(_ int, part string) string {
			return naming.Lower(part)
		}), nil
	case ScreamingSnakeCase:
		return joinMapped(w.parts, "_", func(_ int, part string) string {
			return naming.Upper(part)
		}), nil
	case JavaTypeName:
		return n.joinJavaType(w)
	case JavaMemberName:
		return n.joinJavaMember(w)
	case JavaPackagePart:
		joined := joinMapped(w.parts, "", func(_ int, part string) string {
			return naming.Lower(part)
		})
		return n.validJavaIdentifier(w, joined)
	case JavaPackageName:
		segments := make([]string, len(w.parts))
		for i, part := range w.parts {
			segment, err := n.validJavaIdentifier(w, naming.Lower(part))
			if err != nil {
				return "", err
			}
			segments[i] = segment
		}
		return strings.Join(segments, "."), nil
	default: // JavaConstantName
		joined := joinMapped(w.parts, "_", func(_ int, part string) string {
			return naming.Upper(part)
		})
		return n.validJavaIdentifier(w, joined)
	}
}

// joinJavaType capitalizes each word after dropping illegal identifier
// characters. The result must begin with a legal identifier start.
func (n Notation) joinJavaType(w Words) (string, error) {
	joined := joinMapped(w.parts, "", func(i int, part string) string {
		return naming.Capitalize(keepJavaChars(i, part))
	})
	if joined == "" {
		return "", n.invalidInput(w.String(), "no characters legal in a Java identifier")
	}
	if first, _ := utf8.DecodeRuneInString(joined); !naming.IsJavaIdentifierStart(first) {
		return "", n.invalidInput(w.String(), "identifier would start with "+strconv.QuoteRune(first))
	}
	return naming.NeutralizeJavaKeyword(joined), nil
}

// joinJavaMember keeps words lowercase until a letter has been written, then
// capitalizes the rest, so ("1", "member", "name") becomes "memberName".
func (n Notation) joinJavaMember(w Words) (string, error) {
	var b strings.Builder
	seenLetter := false
	for i, part := range w.parts {
		filtered := keepJavaChars(i, part)
		if seenLetter {
			b.WriteString(naming.Capitalize(filtered))
		} else {
			b.WriteString(naming.Lower(filtered))
		}
		if strings.IndexFunc(filtered, unicode.IsLetter) >= 0 {
			seenLetter = true
		}
	}
	return n.validJavaIdentifier(w, b.String())
}

// validJavaIdentifier trims s to a legal Java identifier and neutralizes
// reserved words.
func (n Notation) validJavaIdentifier(w Words, s string) (string, error) {
	id := naming.KeepJavaIdentifierChars(s)
	if id == "" {
		return "", n.invalidInput(w.String(), "no characters legal in a Java identifier")
	}
	return naming.NeutralizeJavaKeyword(id), nil
}

// keepJavaChars filters the i-th word: the first word must also start like an identifier.
func keepJavaChars(i int, part string) string {
	if i == 0 {
		return naming.KeepJavaIdentifierChars(part)
	}
	return naming.KeepJavaIdentifierPartChars(part)
}

func joinMapped(parts []string, sep string, fn func(int, string) string) string {
	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(fn(i, part))
	}
	return b.String()
}
