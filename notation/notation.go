package notation

import (
	"fmt"
	"strings"

	"github.com/erraggy/stringnotation/internal/naming"
	"github.com/erraggy/stringnotation/notationerrors"
)

// Notation identifies a convention for writing a sequence of words as a
// single string. The zero value is not a valid notation.
type Notation int

const (
	// LowerCamelCase is the lowerCamelCase notation.
	LowerCamelCase Notation = iota + 1
	// UpperCamelCase is the UpperCamelCase notation.
	UpperCamelCase
	// NormalWords is text written like normal language, words separated by whitespace.
	NormalWords
	// JavaTypeName is UpperCamelCase restricted to legal Java identifiers.
	JavaTypeName
	// SnakeCase is the snake_case notation.
	SnakeCase
	// ScreamingSnakeCase is the SCREAMING_SNAKE_CASE notation.
	ScreamingSnakeCase
	// JavaMemberName is lowerCamelCase restricted to legal Java identifiers.
	JavaMemberName
	// JavaPackagePart is a single lowercase Java package segment.
	JavaPackagePart
	// JavaPackageName is a whole dotted Java package name.
	JavaPackageName
	// JavaConstantName is SCREAMING_SNAKE_CASE restricted to legal Java identifiers.
	JavaConstantName
)

type notationInfo struct {
	name        string
	example     string
	description string
	aliases     []string
}

var notationInfos = map[Notation]notationInfo{
	LowerCamelCase: {
		name:        "LowerCamelCase",
		example:     "myVariableName",
		description: "Each uppercase letter starts a word. Input must not start with an uppercase letter.",
		aliases:     []string{"camel", "camelcase", "lowercamel"},
	},
	UpperCamelCase: {
		name:        "UpperCamelCase",
		example:     "MyVariableName",
		description: "Each uppercase letter starts a word. Input must not start with a lowercase letter.",
		aliases:     []string{"pascal", "pascalcase", "uppercamel"},
	},
	NormalWords: {
		name:        "NormalWords",
		example:     "my variable name",
		description: "Words separated by whitespace. Punctuation around words is dropped.",
		aliases:     []string{"words", "normal", "text"},
	},
	JavaTypeName: {
		name:        "JavaTypeName",
		example:     "MyVariableName",
		description: "UpperCamelCase of ASCII letters and digits. Digits attach to the preceding word.",
		aliases:     []string{"javatype", "typename"},
	},
	SnakeCase: {
		name:        "SnakeCase",
		example:     "my_variable_name",
		description: "Lowercase words separated by underscores.",
		aliases:     []string{"snake"},
	},
	ScreamingSnakeCase: {
		name:        "ScreamingSnakeCase",
		example:     "MY_VARIABLE_NAME",
		description: "Uppercase words separated by underscores.",
		aliases:     []string{"screamingsnake", "constant", "constantcase", "macro", "macrocase"},
	},
	JavaMemberName: {
		name:        "JavaMemberName",
		example:     "myVariableName",
		description: "lowerCamelCase with characters illegal in Java identifiers dropped.",
		aliases:     []string{"javamember", "membername"},
	},
	JavaPackagePart: {
		name:        "JavaPackagePart",
		example:     "myvariablename",
		description: "Concatenated lowercase words forming one Java package segment.",
		aliases:     []string{"packagepart"},
	},
	JavaPackageName: {
		name:        "JavaPackageName",
		example:     "my.variable.name",
		description: "Lowercase Java identifiers separated by dots.",
		aliases:     []string{"javapackage", "packagename"},
	},
	JavaConstantName: {
		name:        "JavaConstantName",
		example:     "MY_VARIABLE_NAME",
		description: "SCREAMING_SNAKE_CASE with characters illegal in Java identifiers dropped.",
		aliases:     []string{"javaconstant"},
	},
}

// lookup maps normalized names and aliases to notations.
var lookup = buildLookup()

func buildLookup() map[string]Notation {
	m := make(map[string]Notation)
	for n, info := range notationInfos {
		m[normalizeName(info.name)] = n
		for _, alias := range info.aliases {
			m[normalizeName(alias)] = n
		}
	}
	return m
}

// normalizeName lowercases name and drops separators so that
// "lower-camel-case", "lower_camel_case" and "LowerCamelCase" compare equal.
func normalizeName(name string) string {
	return naming.Lower(strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', '.', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(name)))
}

// All returns every notation in declaration order.
func All() []Notation {
	return []Notation{
		LowerCamelCase,
		UpperCamelCase,
		NormalWords,
		JavaTypeName,
		SnakeCase,
		ScreamingSnakeCase,
		JavaMemberName,
		JavaPackagePart,
		JavaPackageName,
		JavaConstantName,
	}
}

// Parse resolves a notation by name. Matching ignores case and the
// separators '_', '-', '.' and ' ', and accepts common aliases such as
// "camel", "pascal", "snake" and "constant".
func Parse(name string) (Notation, error) {
	if n, ok := lookup[normalizeName(name)]; ok {
		return n, nil
	}
	return 0, &notationerrors.ConfigError{
		Option:  "notation",
		Value:   name,
		Message: "unknown notation; valid notations: " + strings.Join(Names(), ", "),
	}
}

// Names returns the canonical names of all notations.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, n := range all {
		names[i] = n.String()
	}
	return names
}

// IsValid reports whether n is one of the declared notations.
func (n Notation) IsValid() bool {
	_, ok := notationInfos[n]
	return ok
}

// String returns the canonical name of the notation.
func (n Notation) String() string {
	if info, ok := notationInfos[n]; ok {
		return info.name
	}
	return fmt.Sprintf("Notation(%d)", int(n))
}

// Example returns a sample phrase written in the notation.
func (n Notation) Example() string {
	return notationInfos[n].example
}

// Description returns a one-line summary of how the notation splits and joins.
func (n Notation) Description() string {
	return notationInfos[n].description
}

// Aliases returns the alternative names Parse accepts for the notation.
func (n Notation) Aliases() []string {
	return append([]string(nil), notationInfos[n].aliases...)
}

// MarshalText implements encoding.TextMarshaler.
func (n Notation) MarshalText() ([]byte, error) {
	if !n.IsValid() {
		return nil, n.unknownError()
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (n *Notation) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n Notation) unknownError() error {
	return &notationerrors.ConfigError{
		Option:  "notation",
		Value:   int(n),
		Message: "unknown notation",
	}
}
