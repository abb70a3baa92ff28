// Package logging builds the zerolog logger used for progress and
// diagnostic messages. Logs always go to a writer separate from the report.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum log level to output.
	Level string

	// Output is where to write logs. Defaults to os.Stderr.
	Output io.Writer

	// NoColor disables color output in console mode.
	NoColor bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() *Config {
	return &Config{
		Level:   "warn",
		Output:  os.Stderr,
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// New creates a logger from configuration.
func New(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	w := zerolog.ConsoleWriter{
		Out:         out,
		NoColor:     cfg.NoColor,
		PartsOrder:  []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: formatLevel(cfg.NoColor),
	}

	return zerolog.New(w).Level(ParseLevel(cfg.Level))
}

// ParseLevel parses a log level string, defaulting to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug", "verbose":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning", "":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "none", "off":
		return zerolog.Disabled
	default:
		if l, err := zerolog.ParseLevel(level); err == nil {
			return l
		}
		return zerolog.WarnLevel
	}
}

// formatLevel renders the level as a short lowercase tag. Debug lines carry
// no tag so verbose progress reads as plain text.
func formatLevel(noColor bool) zerolog.Formatter {
	return func(i any) string {
		l, _ := i.(string)
		switch l {
		case zerolog.LevelDebugValue, zerolog.LevelTraceValue:
			return ""
		case zerolog.LevelWarnValue, zerolog.LevelErrorValue:
			if noColor {
				return l + ":"
			}
			return "\x1b[31m" + l + ":\x1b[0m"
		default:
			return l + ":"
		}
	}
}
