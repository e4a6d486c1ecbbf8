package logging

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/bostick/common/clock"
)

// Logger writes leveled records tagged with the name of the component that
// produced them. The handler decides where records go and which levels pass.
type Logger struct {
	tag       string
	handler   slog.Handler
	unusual   MessageCapturer
	transient MessageCapturer
}

// Option configures a Logger.
type Option func(*Logger)

// WithUnusualCapturer forwards every Unusualf message to c.
func WithUnusualCapturer(c MessageCapturer) Option {
	return func(l *Logger) { l.unusual = c }
}

// WithTransientCapturer sets the capturer used by Transient.
func WithTransientCapturer(c MessageCapturer) Option {
	return func(l *Logger) { l.transient = c }
}

// New returns a logger for tag writing to h.
func New(tag string, h slog.Handler, opts ...Option) *Logger {
	l := &Logger{tag: tag, handler: h}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Default returns a logger for tag writing to the slog default handler.
func Default(tag string) *Logger {
	return New(tag, slog.Default().Handler())
}

// Named returns a copy of l with a different tag. Capturers are shared.
func (l *Logger) Named(tag string) *Logger {
	c := *l
	c.tag = tag
	return &c
}

func (l *Logger) Tag() string { return l.tag }

// Slog exposes the logger as a *slog.Logger with the tag attached.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(l.handler).With("tag", l.tag)
}

// Enabled reports whether records at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l.handler.Enabled(context.Background(), level.slogLevel())
}

func (l *Logger) Fatalf(format string, args ...any) {
	l.logf(LevelFatal, false, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.logf(LevelError, false, format, args...)
}

// Unusualf logs at error severity and hands the message to the unusual
// capturer, if one is set.
func (l *Logger) Unusualf(format string, args ...any) {
	msg := l.logf(LevelUnusual, true, format, args...)
	if l.unusual == nil {
		l.logf(LevelError, false, "cannot capture unusual message: no capturer")
		return
	}
	l.unusual.Capture(msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.logf(LevelWarn, false, format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.logf(LevelInfo, false, format, args...)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, false, format, args...)
}

func (l *Logger) Tracef(format string, args ...any) {
	l.logf(LevelTrace, false, format, args...)
}

// Transient hands msg to the transient capturer. Transient messages are
// shown to the user briefly and never logged.
func (l *Logger) Transient(msg string) error {
	if l.transient == nil {
		return ErrNoCapturer
	}
	l.transient.Capture(msg)
	return nil
}

// Trace logs entry into function at trace level and returns a func that logs
// the exit. Use as: defer log.Trace("Push")().
func (l *Logger) Trace(function string) func() {
	if !l.Enabled(LevelTrace) {
		return func() {}
	}
	_, file, line, _ := runtime.Caller(1)
	l.logf(LevelTrace, false, "%s: enter %s %s:%d", clock.FormatTime(time.Now()), function, file, line)
	return func() {
		l.logf(LevelTrace, false, "%s: exit %s %s:%d", clock.FormatTime(time.Now()), function, file, line)
	}
}

// logf formats and writes one record. The formatted message is returned even
// when the level is disabled, so capturers still see it.
func (l *Logger) logf(level Level, unusual bool, format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	ctx := context.Background()
	if !l.handler.Enabled(ctx, level.slogLevel()) {
		return msg
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, logf, Errorf]
	r := slog.NewRecord(time.Now(), level.slogLevel(), msg, pcs[0])
	r.AddAttrs(slog.String("tag", l.tag))
	if unusual {
		r.AddAttrs(slog.Bool("unusual", true))
	}
	_ = l.handler.Handle(ctx, r)
	return msg
}
