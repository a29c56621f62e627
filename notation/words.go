package notation

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode"

	"github.com/erraggy/stringnotation/internal/naming"
	"github.com/erraggy/stringnotation/notationerrors"
)

// Kind classifies the characters a Word is made of.
type Kind int

const (
	// KindAlphabetic is a word made only of letters.
	KindAlphabetic Kind = iota
	// KindNumeric is a word made only of decimal digits.
	KindNumeric
	// KindMixed is any other word, e.g. "name4" or "i’m".
	KindMixed
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAlphabetic:
		return "alphabetic"
	case KindNumeric:
		return "numeric"
	case KindMixed:
		return "mixed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Word is a single non-empty, lowercase word.
type Word string

// Kind reports whether w is alphabetic, numeric or mixed.
func (w Word) Kind() Kind {
	letters, digits := 0, 0
	n := 0
	for _, r := range string(w) {
		n++
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		}
	}
	switch {
	case n > 0 && letters == n:
		return KindAlphabetic
	case n > 0 && digits == n:
		return KindNumeric
	default:
		return KindMixed
	}
}

// Words is an immutable, ordered sequence of lowercase words.
// The zero value is the empty sequence.
type Words struct {
	parts []string
}

// NewWords builds a word sequence from parts. Each part is lowercased.
// An empty or whitespace-only part is rejected with an
// [notationerrors.InvalidInputError].
func NewWords(parts ...string) (Words, error) {
	if len(parts) == 0 {
		return Words{}, nil
	}
	lowered := make([]string, len(parts))
	for i, part := range parts {
		if part == "" {
			return Words{}, &notationerrors.InvalidInputError{
				Text:    strings.Join(parts, " "),
				Message: fmt.Sprintf("word %d is empty", i),
			}
		}
		if strings.TrimSpace(part) == "" {
			return Words{}, &notationerrors.InvalidInputError{
				Text:    strings.Join(parts, " "),
				Message: fmt.Sprintf("word %d is blank", i),
			}
		}
		lowered[i] = naming.Lower(part)
	}
	return Words{parts: lowered}, nil
}

// MustNewWords is like NewWords but panics if a part is empty or blank.
func MustNewWords(parts ...string) Words {
	w, err := NewWords(parts...)
	if err != nil {
		panic(err)
	}
	return w
}

// wordsOf wraps parts that are already lowercase and non-empty.
func wordsOf(parts []string) Words {
	if len(parts) == 0 {
		return Words{}
	}
	return Words{parts: parts}
}

// Len returns the number of words.
func (w Words) Len() int {
	return len(w.parts)
}

// IsEmpty reports whether the sequence has no words.
func (w Words) IsEmpty() bool {
	return len(w.parts) == 0
}

// At returns the word at index i. It panics if i is out of range.
func (w Words) At(i int) Word {
	return Word(w.parts[i])
}

// Parts returns a copy of the words as strings.
func (w Words) Parts() []string {
	return slices.Clone(w.parts)
}

// All iterates over the words in reading order.
func (w Words) All() iter.Seq2[int, Word] {
	return func(yield func(int, Word) bool) {
		for i, part := range w.parts {
			if !yield(i, Word(part)) {
				return
			}
		}
	}
}

// Equal reports whether w and other hold the same words in the same order.
func (w Words) Equal(other Words) bool {
	return slices.Equal(w.parts, other.parts)
}

// Append returns a new sequence with parts added after the words of w.
func (w Words) Append(parts ...string) (Words, error) {
	extra, err := NewWords(parts...)
	if err != nil {
		return Words{}, err
	}
	return w.Concat(extra), nil
}

// Concat returns a new sequence holding the words of w followed by those of other.
func (w Words) Concat(other Words) Words {
	if other.IsEmpty() {
		return w
	}
	if w.IsEmpty() {
		return other
	}
	return Words{parts: slices.Concat(w.parts, other.parts)}
}

// ToNotation renders the words in notation n. It is shorthand for n.Join(w).
func (w Words) ToNotation(n Notation) (string, error) {
	return n.Join(w)
}

// String returns the words separated by single spaces.
func (w Words) String() string {
	return strings.Join(w.parts, " ")
}
