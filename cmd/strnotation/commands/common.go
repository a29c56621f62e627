// Package commands provides CLI command handlers for strnotation.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/stringnotation/notation"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
		if err == nil {
			bytes = append(bytes, '\n')
		}
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = w.Write(bytes)
	return err
}

// readSource reads a whole file, or stdin when path is StdinFilePath.
func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied CLI argument
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// parseNotationFlag resolves a notation flag value, naming the flag in errors.
func parseNotationFlag(flagName, value string) (notation.Notation, error) {
	if value == "" {
		return 0, fmt.Errorf("--%s is required", flagName)
	}
	n, err := notation.Parse(value)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s: %w", flagName, err)
	}
	return n, nil
}

// debugLogger returns a slog-backed logger writing debug records to w.
func debugLogger(w io.Writer) notation.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return notation.NewSlogAdapter(slog.New(handler))
}

// errFailedJobs is returned by commands that keep going after individual failures.
var errFailedJobs = errors.New("one or more conversions failed")
