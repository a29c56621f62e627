package notation

import (
	"github.com/erraggy/stringnotation/internal/options"
	"github.com/erraggy/stringnotation/notationerrors"
)

// Option is a function that configures a ConvertWithOptions call.
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion.
type convertConfig struct {
	// Input source (exactly one must be set)
	input *string
	words *Words

	source Notation
	target Notation
	logger Logger
}

// WithInput specifies the text to convert. It requires a source notation.
func WithInput(text string) Option {
	return func(cfg *convertConfig) error {
		cfg.input = &text
		return nil
	}
}

// WithWords specifies an already split word sequence to render.
func WithWords(w Words) Option {
	return func(cfg *convertConfig) error {
		cfg.words = &w
		return nil
	}
}

// WithSource sets the notation the input text is written in.
func WithSource(n Notation) Option {
	return func(cfg *convertConfig) error {
		if !n.IsValid() {
			return &notationerrors.ConfigError{Option: "source", Value: int(n), Message: "unknown notation"}
		}
		cfg.source = n
		return nil
	}
}

// WithSourceName sets the source notation by name. See Parse for accepted names.
func WithSourceName(name string) Option {
	return func(cfg *convertConfig) error {
		n, err := Parse(name)
		if err != nil {
			return &notationerrors.ConfigError{Option: "source", Value: name, Message: "unknown notation", Cause: err}
		}
		cfg.source = n
		return nil
	}
}

// WithTarget sets the notation to render the words in.
func WithTarget(n Notation) Option {
	return func(cfg *convertConfig) error {
		if !n.IsValid() {
			return &notationerrors.ConfigError{Option: "target", Value: int(n), Message: "unknown notation"}
		}
		cfg.target = n
		return nil
	}
}

// WithTargetName sets the target notation by name. See Parse for accepted names.
func WithTargetName(name string) Option {
	return func(cfg *convertConfig) error {
		n, err := Parse(name)
		if err != nil {
			return &notationerrors.ConfigError{Option: "target", Value: name, Message: "unknown notation", Cause: err}
		}
		cfg.target = n
		return nil
	}
}

// WithLogger sets a structured logger that receives debug records for each
// conversion stage. Use NewSlogAdapter to wrap a *slog.Logger.
func WithLogger(l Logger) Option {
	return func(cfg *convertConfig) error {
		if l == nil {
			return &notationerrors.ConfigError{Option: "logger", Message: "logger cannot be nil"}
		}
		cfg.logger = l
		return nil
	}
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		logger: NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.RequireOne("input", "WithInput or WithWords", cfg.input != nil, cfg.words != nil); err != nil {
		return nil, err
	}

	if cfg.input != nil && cfg.source == 0 {
		return nil, &notationerrors.ConfigError{Option: "source", Message: "source notation is required with WithInput"}
	}
	if cfg.target == 0 {
		return nil, &notationerrors.ConfigError{Option: "target", Message: "target notation is required"}
	}

	return cfg, nil
}
