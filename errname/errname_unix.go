//go:build unix

package errname

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// Name returns the symbolic name of e, such as "ENOENT".
func Name(e syscall.Errno) string {
	if n := unix.ErrnoName(e); n != "" {
		return n
	}
	return Unhandled
}
