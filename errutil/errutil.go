package errutil

import (
	"errors"
	"fmt"
	"strings"
)

// NiceString describes err for a crash report: its type, its message, and
// the same two lines for the error it wraps, if any.
func NiceString(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	writeError(&b, err)
	if cause := errors.Unwrap(err); cause != nil {
		b.WriteString("\nCause:\n")
		writeError(&b, cause)
	}
	return b.String()
}

func writeError(b *strings.Builder, err error) {
	fmt.Fprintf(b, "%T", err)
	if msg := err.Error(); msg != "" {
		b.WriteString("\n")
		b.WriteString(msg)
	}
}
