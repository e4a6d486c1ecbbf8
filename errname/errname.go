// Package errname turns errno values into their symbolic names.
package errname

import (
	"errors"
	"syscall"
)

// Unhandled is returned for errno values without a known name.
const Unhandled = "EUNHANDLED"

// Of returns the name of the errno wrapped in err, or "" if err carries none.
func Of(err error) string {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return ""
	}
	return Name(errno)
}
