package logs

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger. Debug enables debug level and source
// locations.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	opts := slog.HandlerOptions{
		AddSource: debug,
		Level:     slog.LevelInfo,
	}
	if debug {
		opts.Level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &opts))
}
