// Package notationerrors provides structured error types for the stringnotation library.
//
// Import path: github.com/erraggy/stringnotation/notationerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell which stage of a conversion failed and why.
//
// # Error Types
//
//   - [InvalidInputError]: text or words that violate a notation's structural rules
//   - [EmptySequenceError]: a join was attempted on zero words
//   - [ConfigError]: invalid options or unknown notation names
//   - [ResourceLimitError]: input larger than a configured limit
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidInput]: Matches any [InvalidInputError]
//   - [ErrEmptySequence]: Matches any [EmptySequenceError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	out, err := notation.Convert("myVariable", notation.UpperCamelCase, notation.NormalWords)
//	if errors.Is(err, notationerrors.ErrInvalidInput) {
//	    // The source text is not written in UpperCamelCase
//	}
//
// Extract error details with errors.As():
//
//	var inputErr *notationerrors.InvalidInputError
//	if errors.As(err, &inputErr) {
//	    fmt.Printf("%q is not valid %s\n", inputErr.Text, inputErr.Notation)
//	}
package notationerrors
