package notationerrors

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidInput indicates text or words that a notation cannot accept.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptySequence indicates a join of zero words.
	ErrEmptySequence = errors.New("empty word sequence")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// InvalidInputError reports input that violates the structural precondition of a
// notation: a wrong starting case, an illegal character, or words that cannot be
// rendered as a legal identifier.
type InvalidInputError struct {
	// Text is the offending input. For join failures it is the rendered word sequence.
	Text string
	// Notation is the name of the notation that rejected the input
	Notation string
	// Message describes the violated rule
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidInputError) Error() string {
	msg := "invalid input"
	if e.Notation != "" {
		msg += " for " + e.Notation
	}
	msg += " " + strconv.Quote(e.Text)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// EmptySequenceError reports a join attempted on a word sequence with no words.
type EmptySequenceError struct {
	// Notation is the name of the notation asked to render nothing
	Notation string
}

// Error returns a human-readable error message.
func (e *EmptySequenceError) Error() string {
	if e.Notation == "" {
		return "empty word sequence"
	}
	return "empty word sequence: " + e.Notation + " cannot render zero words"
}

// Is reports whether target matches this error type.
func (e *EmptySequenceError) Is(target error) bool {
	return target == ErrEmptySequence
}

// ConfigError represents an invalid configuration or input option.
// This includes unknown notation names, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ResourceLimitError represents input that exceeds a configured limit.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded, e.g. "input_size" or "word_count"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
