package notation

import "log/slog"

// Logger receives one record per conversion stage from ConvertWithOptions.
// Records carry "target" and, for text input, "source" (notation names),
// plus stage fields as slog-style key-value pairs:
//
//	split input    input, words (count)
//	split failed   input, error
//	joined words   words (count), output
//	join failed    words (space separated), error
//
// All stages log at debug level. Wrap a slog.Logger with [NewSlogAdapter]:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	result, err := notation.ConvertWithOptions(
//	    notation.WithInput("myVariable"),
//	    notation.WithSource(notation.LowerCamelCase),
//	    notation.WithTarget(notation.SnakeCase),
//	    notation.WithLogger(notation.NewSlogAdapter(slog.New(handler))),
//	)
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a Logger that adds attrs to every record, used to pin
	// the source and target notation for one conversion.
	With(attrs ...any) Logger
}

// NopLogger discards every record. Conversions use it unless WithLogger is given.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any) {}
func (NopLogger) Warn(string, ...any) {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter forwards conversion records to a *slog.Logger, so the caller's
// handler decides level filtering and output format.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns an adapter for logger, or for slog.Default() when
// logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (s *SlogAdapter) Debug(msg string, attrs ...any) {
	s.logger.Debug(msg, attrs...)
}

// Info implements Logger.
func (s *SlogAdapter) Info(msg string, attrs ...any) {
	s.logger.Info(msg, attrs...)
}

// Warn implements Logger.
func (s *SlogAdapter) Warn(msg string, attrs ...any) {
	s.logger.Warn(msg, attrs...)
}

// Error implements Logger.
func (s *SlogAdapter) Error(msg string, attrs ...any) {
	s.logger.Error(msg, attrs...)
}

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)
