package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/erraggy/stringnotation/notationerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJoinFlags(t *testing.T) {
	fs, flags := SetupJoinFlags()
	assert.Empty(t, flags.Notation)

	require.NoError(t, fs.Parse([]string{"-n", "pascal", "my", "name"}))
	assert.Equal(t, "pascal", flags.Notation)
	assert.Equal(t, []string{"my", "name"}, fs.Args())
}

func TestRunJoin(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"pascal", []string{"-n", "pascal", "my", "variable", "name"}, "MyVariableName\n"},
		{"camel lowercases input", []string{"-n", "camel", "MY", "Variable"}, "myVariable\n"},
		{"package name", []string{"-n", "JavaPackageName", "com", "example", "app"}, "com.example.app\n"},
		{"reserved word", []string{"--notation", "JavaMemberName", "class"}, "class_\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.NoError(t, runJoin(tt.args, &stdout, &stderr))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRunJoin_Errors(t *testing.T) {
	t.Run("no words", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runJoin([]string{"-n", "pascal"}, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires at least one word")
	})

	t.Run("empty word", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runJoin([]string{"-n", "pascal", "my", ""}, &stdout, &stderr)
		require.Error(t, err)
		assert.True(t, errors.Is(err, notationerrors.ErrInvalidInput))
	})

	t.Run("no legal identifier", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runJoin([]string{"-n", "JavaTypeName", "!!"}, &stdout, &stderr)
		require.Error(t, err)
		assert.True(t, errors.Is(err, notationerrors.ErrInvalidInput))
	})
}
