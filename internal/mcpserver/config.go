package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/stringnotation/notation"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Input limits.
	MaxInputSize int
	MaxWords     int

	// Convert tool defaults. DefaultTarget is zero when unset.
	DefaultTarget notation.Notation
	IncludeWords  bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from STRNOTATION_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInputSize:  envInt("STRNOTATION_MAX_INPUT_SIZE", 64*1024),
		MaxWords:      envInt("STRNOTATION_MAX_WORDS", 1024),
		DefaultTarget: envNotation("STRNOTATION_DEFAULT_TARGET"),
		IncludeWords:  envBool("STRNOTATION_INCLUDE_WORDS", true),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envNotation(key string) notation.Notation {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := notation.Parse(v)
	if err != nil {
		slog.Warn("invalid notation env var, ignoring", "key", key, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		return 0
	}
	return n
}
