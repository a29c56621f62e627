package notation

import (
	"encoding/json"
	"testing"

	"github.com/erraggy/stringnotation/notationerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Notation
	}{
		{input: "LowerCamelCase", want: LowerCamelCase},
		{input: "lower-camel-case", want: LowerCamelCase},
		{input: "camel", want: LowerCamelCase},
		{input: "UpperCamelCase", want: UpperCamelCase},
		{input: "pascal", want: UpperCamelCase},
		{input: " normal words ", want: NormalWords},
		{input: "words", want: NormalWords},
		{input: "java_type_name", want: JavaTypeName},
		{input: "SNAKE_CASE", want: SnakeCase},
		{input: "screaming-snake-case", want: ScreamingSnakeCase},
		{input: "constant", want: ScreamingSnakeCase},
		{input: "JavaMemberName", want: JavaMemberName},
		{input: "java.package.part", want: JavaPackagePart},
		{input: "packagename", want: JavaPackageName},
		{input: "JavaConstantName", want: JavaConstantName},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		_, err := Parse("kebab")
		require.Error(t, err)
		assert.ErrorIs(t, err, notationerrors.ErrConfig)
		assert.Contains(t, err.Error(), "LowerCamelCase")
	})
}

func TestAllNotations(t *testing.T) {
	all := All()
	require.Len(t, all, 10)

	seen := make(map[string]bool)
	for _, n := range all {
		assert.True(t, n.IsValid(), "%d should be valid", int(n))
		assert.NotEmpty(t, n.Example(), "%s needs an example", n)
		assert.NotEmpty(t, n.Description(), "%s needs a description", n)
		assert.False(t, seen[n.String()], "duplicate name %s", n)
		seen[n.String()] = true

		parsed, err := Parse(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, parsed)

		for _, alias := range n.Aliases() {
			parsed, err := Parse(alias)
			require.NoError(t, err)
			assert.Equal(t, n, parsed, "alias %q", alias)
		}
	}
	assert.Equal(t, len(all), len(Names()))
}

func TestNotationExamplesRoundTrip(t *testing.T) {
	for _, n := range All() {
		t.Run(n.String(), func(t *testing.T) {
			words, err := n.Split(n.Example())
			require.NoError(t, err)
			if n != JavaPackagePart {
				assert.Equal(t, []string{"my", "variable", "name"}, words.Parts())
			}

			out, err := n.Join(words)
			require.NoError(t, err)
			assert.Equal(t, n.Example(), out)
		})
	}
}

func TestInvalidNotation(t *testing.T) {
	var zero Notation
	assert.False(t, zero.IsValid())
	assert.Equal(t, "Notation(0)", zero.String())

	_, err := zero.Split("abc")
	assert.ErrorIs(t, err, notationerrors.ErrConfig)

	_, err = zero.Join(MustNewWords("abc"))
	assert.ErrorIs(t, err, notationerrors.ErrConfig)

	_, err = zero.MarshalText()
	assert.ErrorIs(t, err, notationerrors.ErrConfig)
}

func TestNotationText(t *testing.T) {
	type job struct {
		From Notation `json:"from"`
		To   Notation `json:"to"`
	}

	data, err := json.Marshal(job{From: SnakeCase, To: JavaTypeName})
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"SnakeCase","to":"JavaTypeName"}`, string(data))

	var decoded job
	require.NoError(t, json.Unmarshal([]byte(`{"from":"camel","to":"screaming_snake_case"}`), &decoded))
	assert.Equal(t, LowerCamelCase, decoded.From)
	assert.Equal(t, ScreamingSnakeCase, decoded.To)

	err = json.Unmarshal([]byte(`{"from":"nope"}`), &decoded)
	assert.Error(t, err)
}
