//go:build !unix

package errname

import "syscall"

var names = map[syscall.Errno]string{
	syscall.EACCES:  "EACCES",
	syscall.EEXIST:  "EEXIST",
	syscall.EINVAL:  "EINVAL",
	syscall.ENOENT:  "ENOENT",
	syscall.ENOTDIR: "ENOTDIR",
}

// Name returns the symbolic name of e, such as "ENOENT".
func Name(e syscall.Errno) string {
	if n, ok := names[e]; ok {
		return n
	}
	return Unhandled
}
