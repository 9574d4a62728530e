package cli

import (
	"fmt"
	"io"
	"log/slog"
)

// parseLevel converts a config level name to a slog level.
func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidLogLevel, name)
	}
	return level, nil
}

// newLogger returns a slog logger writing to w in the given format.
func newLogger(w io.Writer, levelName, format string) (*slog.Logger, error) {
	level, err := parseLevel(levelName)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
