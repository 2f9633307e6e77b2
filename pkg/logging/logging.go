package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is a slog level; the aliases below are the names profiles accept.
type Level = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config describes one logger.
type Config struct {
	Level  Level
	Format Format
	// Output receives records. Nil means os.Stderr.
	Output io.Writer
	// AddSource records the caller's file and line.
	AddSource bool
}

// DefaultConfig returns the defaults used by ewsctl: warnings and above,
// as text, on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// New builds a logger for cfg.
func New(cfg Config) *slog.Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}
	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Nop returns a logger that drops every record. Services and the fake
// endpoint use it when no logger is configured.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Component returns logger tagged with the emitting component.
func Component(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = Nop()
	}
	return logger.With("component", name)
}

// ParseLevel maps a profile level name to a Level, falling back to
// LevelInfo for names it does not know.
func ParseLevel(s string) Level {
	level, err := ParseLevelStrict(s)
	if err != nil {
		return LevelInfo
	}
	return level
}

// ParseLevelStrict accepts debug, info, warn (or warning) and error in any
// case. The empty string is LevelInfo.
func ParseLevelStrict(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// ParseFormat maps a profile format name to a Format, falling back to
// FormatText.
func ParseFormat(s string) Format {
	f, err := ParseFormatStrict(s)
	if err != nil {
		return FormatText
	}
	return f
}

// ParseFormatStrict accepts text and json in any case. The empty string is
// FormatText.
func ParseFormatStrict(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("unknown log format %q", s)
}
