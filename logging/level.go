package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Level is a tag-logger verbosity. Larger values are more verbose.
type Level int

const (
	LevelFatal Level = iota - 1
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// LevelUnusual shares the severity of LevelError. Unusual records carry an
// extra unusual=true attribute and are forwarded to the unusual capturer.
const LevelUnusual = LevelError

// slog levels used for the two levels slog does not define.
const (
	slogLevelTrace = slog.LevelDebug - 4
	slogLevelFatal = slog.LevelError + 4
)

// ErrInvalidLevel is returned for a level outside [LevelFatal, LevelTrace].
var ErrInvalidLevel = errors.New("logging: invalid log level")

func (l Level) String() string {
	switch l {
	case LevelFatal:
		return "FATAL"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

func (l Level) valid() bool {
	return l >= LevelFatal && l <= LevelTrace
}

// slogLevel maps l onto the slog severity scale.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelFatal:
		return slogLevelFatal
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slogLevelTrace
	}
}

// ParseLevel accepts the level names case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fatal":
		return LevelFatal, nil
	case "error", "unusual":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace", "verbose":
		return LevelTrace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// SetLevel makes v admit records at l and everything more severe. Error and
// fatal records are always admitted, so LevelFatal behaves like LevelError.
func SetLevel(v *slog.LevelVar, l Level) error {
	if !l.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	if l == LevelFatal {
		l = LevelError
	}
	v.Set(l.slogLevel())
	return nil
}

// replaceLevel renders the custom slog levels by name.
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch lvl {
	case slogLevelTrace:
		a.Value = slog.StringValue("TRACE")
	case slogLevelFatal:
		a.Value = slog.StringValue("FATAL")
	}
	return a
}
