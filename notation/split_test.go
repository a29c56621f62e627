package notation

import (
	"errors"
	"strings"
	"testing"

	"github.com/erraggy/stringnotation/notationerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		notation Notation
		input    string
		want     []string
	}{
		// LowerCamelCase
		{name: "lower camel two words", notation: LowerCamelCase, input: "myVariable", want: []string{"my", "variable"}},
		{name: "lower camel single char", notation: LowerCamelCase, input: "a", want: []string{"a"}},
		{name: "lower camel long", notation: LowerCamelCase, input: "imInLowerCamelCase", want: []string{"im", "in", "lower", "camel", "case"}},
		{name: "lower camel acronym", notation: LowerCamelCase, input: "myHTTPServer", want: []string{"my", "h", "t", "t", "p", "server"}},
		{name: "lower camel digits", notation: LowerCamelCase, input: "version2Name", want: []string{"version2", "name"}},
		{name: "lower camel leading digit", notation: LowerCamelCase, input: "1abc", want: []string{"1abc"}},

		// UpperCamelCase
		{name: "upper camel two words", notation: UpperCamelCase, input: "MyVariable", want: []string{"my", "variable"}},
		{name: "upper camel single char", notation: UpperCamelCase, input: "A", want: []string{"a"}},
		{name: "upper camel long", notation: UpperCamelCase, input: "ImInUpperCamelCase", want: []string{"im", "in", "upper", "camel", "case"}},
		{name: "upper camel acronym", notation: UpperCamelCase, input: "HTTPServer", want: []string{"h", "t", "t", "p", "server"}},
		{name: "upper camel leading digit", notation: UpperCamelCase, input: "1Abc", want: []string{"1", "abc"}},
		{name: "upper camel unicode", notation: UpperCamelCase, input: "ÜberName", want: []string{"über", "name"}},

		// NormalWords
		{name: "normal words punctuation", notation: NormalWords, input: "1 Type Name 4 You!", want: []string{"1", "type", "name", "4", "you"}},
		{name: "normal words whitespace runs", notation: NormalWords, input: "I’m     using tabs\nand\r other fancy    whitespace!", want: []string{"i’m", "using", "tabs", "and", "other", "fancy", "whitespace"}},
		{name: "normal words inner punctuation kept", notation: NormalWords, input: "release v2.0-beta", want: []string{"release", "v2.0-beta"}},
		{name: "normal words letters and digits not split", notation: NormalWords, input: "Name4You", want: []string{"name4you"}},
		{name: "normal words empty", notation: NormalWords, input: "", want: nil},
		{name: "normal words only punctuation", notation: NormalWords, input: "  !!! ,, ", want: nil},

		// JavaTypeName
		{name: "java type digits attach", notation: JavaTypeName, input: "TypeName4You", want: []string{"type", "name4", "you"}},
		{name: "java type long", notation: JavaTypeName, input: "ImInJavaTypeNotation", want: []string{"im", "in", "java", "type", "notation"}},
		{name: "java type lowercase after digit", notation: JavaTypeName, input: "Name4you", want: []string{"name4", "you"}},
		{name: "java type trailing digits", notation: JavaTypeName, input: "Version12", want: []string{"version12"}},
		{name: "java type single char", notation: JavaTypeName, input: "V", want: []string{"v"}},

		// SnakeCase and ScreamingSnakeCase
		{name: "snake", notation: SnakeCase, input: "im_in_snake_case", want: []string{"im", "in", "snake", "case"}},
		{name: "snake with capitals", notation: SnakeCase, input: "im_iN_sNAKe", want: []string{"im", "in", "snake"}},
		{name: "snake blank parts dropped", notation: SnakeCase, input: "__leading__double__", want: []string{"leading", "double"}},
		{name: "snake empty", notation: SnakeCase, input: "", want: nil},
		{name: "screaming snake", notation: ScreamingSnakeCase, input: "IM_IN_SCREAMING_SNAKE_CASE", want: []string{"im", "in", "screaming", "snake", "case"}},

		// Java notations
		{name: "java member", notation: JavaMemberName, input: "imInJavaMemberNotation", want: []string{"im", "in", "java", "member", "notation"}},
		{name: "java package part camel and snake", notation: JavaPackagePart, input: "withCamelAnd_snake_case", want: []string{"with", "camel", "and", "snake", "case"}},
		{name: "java package part single", notation: JavaPackagePart, input: "imapackagename", want: []string{"imapackagename"}},
		{name: "java package name", notation: JavaPackageName, input: "i.am.a.packagename", want: []string{"i", "am", "a", "packagename"}},
		{name: "java package name capitals", notation: JavaPackageName, input: "wIth.CAPITALS", want: []string{"with", "capitals"}},
		{name: "java constant", notation: JavaConstantName, input: "I_AM_A_CONSTANT", want: []string{"i", "am", "a", "constant"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input, tt.notation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Parts(), "Split(%q, %s)", tt.input, tt.notation)
		})
	}
}

func TestSplitInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		notation Notation
		input    string
	}{
		{name: "lower camel empty", notation: LowerCamelCase, input: ""},
		{name: "lower camel starts uppercase", notation: LowerCamelCase, input: "MyVariable"},
		{name: "lower camel whitespace only", notation: LowerCamelCase, input: "   "},
		{name: "upper camel empty", notation: UpperCamelCase, input: ""},
		{name: "upper camel whitespace only", notation: UpperCamelCase, input: " \t "},
		{name: "java member whitespace only", notation: JavaMemberName, input: "  "},
		{name: "upper camel starts lowercase", notation: UpperCamelCase, input: "myVariable"},
		{name: "java type empty", notation: JavaTypeName, input: ""},
		{name: "java type starts lowercase", notation: JavaTypeName, input: "typeName"},
		{name: "java type starts with digit", notation: JavaTypeName, input: "4You"},
		{name: "java type underscore", notation: JavaTypeName, input: "Type_Name"},
		{name: "java type non-ascii", notation: JavaTypeName, input: "ÜberName"},
		{name: "java type space", notation: JavaTypeName, input: "Type Name"},
		{name: "java member starts uppercase", notation: JavaMemberName, input: "ImWrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.input, tt.notation)
			require.Error(t, err)
			assert.True(t, errors.Is(err, notationerrors.ErrInvalidInput), "got %v", err)

			var inputErr *notationerrors.InvalidInputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.input, inputErr.Text)
			assert.Equal(t, tt.notation.String(), inputErr.Notation)
			assert.NotEmpty(t, inputErr.Message)
		})
	}
}

func TestSplitNeverProducesEmptyWords(t *testing.T) {
	inputs := []string{"", "_", "__a__", " . ", "a..b", "x", "A_B", "  spaced   out  ", " A", "a _ B"}
	for _, n := range []Notation{NormalWords, SnakeCase, ScreamingSnakeCase, JavaPackagePart, JavaPackageName, JavaConstantName} {
		for _, input := range inputs {
			words, err := n.Split(input)
			require.NoError(t, err)
			for _, word := range words.All() {
				assert.NotEmpty(t, strings.TrimSpace(string(word)), "%s.Split(%q)", n, input)
			}
		}
	}

	camelInputs := []string{" Foo", " foo", "my Var", "A B C", "x  Y", "  Lead", "trail  "}
	for _, n := range []Notation{LowerCamelCase, UpperCamelCase, JavaMemberName} {
		for _, input := range camelInputs {
			words, err := n.Split(input)
			if err != nil {
				assert.True(t, errors.Is(err, notationerrors.ErrInvalidInput), "%s.Split(%q): %v", n, input, err)
				continue
			}
			for _, word := range words.All() {
				assert.NotEmpty(t, strings.TrimSpace(string(word)), "%s.Split(%q)", n, input)
			}
		}
	}
}

func TestSplitDropsBlankCamelParts(t *testing.T) {
	tests := []struct {
		notation Notation
		input    string
		want     []string
	}{
		{notation: UpperCamelCase, input: " Foo", want: []string{"foo"}},
		{notation: UpperCamelCase, input: "A B", want: []string{"a ", "b"}},
		{notation: LowerCamelCase, input: "my Var", want: []string{"my ", "var"}},
		{notation: JavaPackagePart, input: " A", want: []string{"a"}},
		{notation: JavaPackagePart, input: "a_ _B", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.notation.String()+"/"+tt.input, func(t *testing.T) {
			got, err := tt.notation.Split(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Parts())
		})
	}
}
