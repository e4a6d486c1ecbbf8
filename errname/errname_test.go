//go:build unix

package errname

import (
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.Equal(t, "ENOENT", Name(syscall.ENOENT))
	assert.Equal(t, "EACCES", Name(syscall.EACCES))
	assert.Equal(t, "EINVAL", Name(syscall.EINVAL))
	assert.Equal(t, Unhandled, Name(syscall.Errno(100000)))
}

func TestOf(t *testing.T) {
	_, err := os.Open("/definitely/not/here")
	assert.Equal(t, "ENOENT", Of(err))
	assert.Equal(t, "EEXIST", Of(fmt.Errorf("wrapped: %w", syscall.EEXIST)))
	assert.Equal(t, "", Of(fmt.Errorf("no errno")))
}
