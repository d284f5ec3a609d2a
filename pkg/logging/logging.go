package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel is the environment variable for the log level.
const EnvLogLevel = `LOG_LEVEL`

// Name is the name of the application doing the logging.
type Name string

// Config is the configuration for the common logger.
type Config struct {
	// appName is attached to every record.
	appName string

	// level is the minimum level that will be written.
	level slog.Level

	// w is where records are written. Defaults to stdout.
	w io.Writer
}

// NewConfig creates a new logging configuration. The level is taken from LOG_LEVEL and
// defaults to info.
func NewConfig(name Name) *Config {
	lvl, err := ParseLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		lvl = slog.LevelInfo
	}

	return &Config{
		appName: string(name),
		level:   lvl,
		w:       os.Stdout,
	}
}

// WithWriter returns a copy of the config writing to w.
func (c *Config) WithWriter(w io.Writer) *Config {
	cp := *c
	cp.w = w
	return &cp
}

// WithLevel returns a copy of the config with the given level.
func (c *Config) WithLevel(l slog.Level) *Config {
	cp := *c
	cp.level = l
	return &cp
}

// CommonLogger creates the JSON logger used across the application and sets it as the
// slog default.
func CommonLogger(c *Config) (*slog.Logger, error) {
	if c == nil {
		return nil, fmt.Errorf("logging config is nil")
	}

	h := slog.NewJSONHandler(c.w, &slog.HandlerOptions{
		AddSource: c.level == slog.LevelDebug,
		Level:     c.level,
	})

	l := slog.New(h).With(slog.String(KeyApp, c.appName))
	slog.SetDefault(l)
	return l, nil
}

// ParseLevel converts a level name into a slog level. An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
