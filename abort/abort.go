// Package abort reports programmer errors and terminates the process.
package abort

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bostick/common/logging"
)

// ExitCode matches the status of a process killed by SIGABRT.
const ExitCode = 134

// Error is the panic value raised when the exit func returns.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "abort: " + e.Msg }

// Aborter logs a fatal message and exits.
type Aborter struct {
	log  *logging.Logger
	exit func(code int)
}

// New returns an Aborter writing to log. A nil exit means os.Exit.
func New(log *logging.Logger, exit func(code int)) *Aborter {
	if exit == nil {
		exit = os.Exit
	}
	return &Aborter{log: log, exit: exit}
}

// Default logs through the slog default handler and calls os.Exit.
func Default() *Aborter {
	return New(logging.Default("abort"), nil)
}

// Abortf logs the message at fatal level and exits. It never returns: if
// the exit func comes back, Abortf panics with *Error.
func (a *Aborter) Abortf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.log.Fatalf("%s", msg)
	a.exit(ExitCode)
	panic(&Error{Msg: msg})
}

// Assert aborts with the failed expression and the caller's location when
// cond is false.
func (a *Aborter) Assert(cond bool, expr string) {
	if cond {
		return
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "???", 0
	}
	a.Abortf("ASSERTION FAILED: %s %s:%d", expr, filepath.Base(file), line)
}
