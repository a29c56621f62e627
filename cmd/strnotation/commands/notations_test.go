package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunNotations_Text(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, runNotations(nil, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, stdout.String(), "LowerCamelCase")
	assert.Contains(t, stdout.String(), "myVariableName")
	assert.Contains(t, stdout.String(), "pascal")
}

func TestRunNotations_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, runNotations([]string{"--format", "json"}, &stdout, &stderr))

	var infos []NotationInfo
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &infos))
	require.Len(t, infos, 10)
	assert.Equal(t, "LowerCamelCase", infos[0].Name)
	assert.Equal(t, "myVariableName", infos[0].Example)
	assert.Contains(t, infos[0].Aliases, "camel")
	for _, info := range infos {
		assert.NotEmpty(t, info.Description, info.Name)
	}
}

func TestRunNotations_InvalidFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runNotations([]string{"--format", "csv"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Empty(t, stdout.String())
}
