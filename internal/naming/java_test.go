package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJavaIdentifierRunes(t *testing.T) {
	tests := []struct {
		name  string
		r     rune
		start bool
		part  bool
	}{
		{name: "ascii letter", r: 'a', start: true, part: true},
		{name: "unicode letter", r: 'ü', start: true, part: true},
		{name: "underscore", r: '_', start: true, part: true},
		{name: "dollar", r: '$', start: true, part: true},
		{name: "digit", r: '7', start: false, part: true},
		{name: "space", r: ' ', start: false, part: false},
		{name: "exclamation", r: '!', start: false, part: false},
		{name: "apostrophe", r: '’', start: false, part: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.start, IsJavaIdentifierStart(tt.r))
			assert.Equal(t, tt.part, IsJavaIdentifierPart(tt.r))
		})
	}
}

func TestKeepJavaIdentifierChars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "leading digit dropped", input: "8if", want: "if"},
		{name: "only digits", input: "1", want: ""},
		{name: "inner space dropped", input: "I’m using", want: "Imusing"},
		{name: "inner digits kept", input: "name4", want: "name4"},
		{name: "trailing punctuation dropped", input: "chaRacters!", want: "chaRacters"},
		{name: "underscore start kept", input: "_start", want: "_start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeepJavaIdentifierChars(tt.input))
		})
	}
}

func TestKeepJavaIdentifierPartChars(t *testing.T) {
	assert.Equal(t, "4", KeepJavaIdentifierPartChars("4"))
	assert.Equal(t, "you", KeepJavaIdentifierPartChars("you!"))
	assert.Equal(t, "ab", KeepJavaIdentifierPartChars("a-b"))
}

func TestJavaKeywords(t *testing.T) {
	assert.True(t, IsJavaKeyword("enum"))
	assert.True(t, IsJavaKeyword("null"))
	assert.True(t, IsJavaKeyword("_"))
	assert.False(t, IsJavaKeyword("Enum"))

	assert.Equal(t, "if_", NeutralizeJavaKeyword("if"))
	assert.Equal(t, "If", NeutralizeJavaKeyword("If"))
	assert.Equal(t, "__", NeutralizeJavaKeyword("_"))
}

func TestIsJavaIdentifier(t *testing.T) {
	assert.True(t, IsJavaIdentifier("TypeName4You"))
	assert.True(t, IsJavaIdentifier("$dollar"))
	assert.True(t, IsJavaIdentifier("enum_"))
	assert.False(t, IsJavaIdentifier(""))
	assert.False(t, IsJavaIdentifier("4You"))
	assert.False(t, IsJavaIdentifier("class"))
	assert.False(t, IsJavaIdentifier("a-b"))
}
