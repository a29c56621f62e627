// Package options provides shared checks for functional option sets.
package options

import "github.com/erraggy/stringnotation/notationerrors"

// CountSet returns how many of the given flags are true.
func CountSet(set ...bool) int {
	n := 0
	for _, s := range set {
		if s {
			n++
		}
	}
	return n
}

// RequireOne ensures exactly one of the mutually exclusive choices for option
// is set. hint names the accepted choices, e.g. "WithInput or WithWords".
func RequireOne(option, hint string, set ...bool) error {
	switch CountSet(set...) {
	case 0:
		return &notationerrors.ConfigError{Option: option, Message: "must specify an " + option + " source (use " + hint + ")"}
	case 1:
		return nil
	default:
		return &notationerrors.ConfigError{Option: option, Message: "must specify exactly one " + option + " source"}
	}
}
