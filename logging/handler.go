package logging

import (
	"io"
	"log/slog"
)

// NewJSONHandler returns the slog JSON handler used by the binaries, with
// the TRACE and FATAL level names filled in.
func NewJSONHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   true,
		Level:       level,
		ReplaceAttr: replaceLevel,
	})
}

// NewTextHandler is NewJSONHandler for humans.
func NewTextHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevel,
	})
}
