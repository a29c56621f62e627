// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/stringnotation/notationerrors"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ErrorKind names the category of err for user-facing messages.
// Example: an *notationerrors.InvalidInputError -> "invalid input"
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, notationerrors.ErrInvalidInput):
		return "invalid input"
	case errors.Is(err, notationerrors.ErrEmptySequence):
		return "empty sequence"
	case errors.Is(err, notationerrors.ErrConfig):
		return "configuration"
	case errors.Is(err, notationerrors.ErrResourceLimit):
		return "resource limit"
	default:
		return "error"
	}
}

// WriteError writes err to w prefixed with its kind, e.g.
//
//	Error [invalid input]: invalid input for UpperCamelCase "myVariable": must not start with a lowercase letter
func WriteError(w io.Writer, err error) {
	Writef(w, "Error [%s]: %v\n", ErrorKind(err), err)
}
