package strutil

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Split("a,b,c", ','))
	assert.Equal(t, []string{"a", "", "b"}, Split("a,,b", ','))
	assert.Equal(t, []string{"a", "b"}, Split("a,b,", ','))
	assert.Equal(t, []string{"", "a"}, Split(",a", ','))
	assert.Equal(t, []string{"abc"}, Split("abc", ','))
	assert.Empty(t, Split("", ','))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `line1\nline2\n`, Escape("line1\nline2\n"))
	assert.Equal(t, "plain", Escape("plain"))
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("123")
	require.NoError(t, err)
	assert.Equal(t, 123, n)

	_, err = ParseInt("123.456")
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = ParseInt("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseInt64(t *testing.T) {
	n, err := ParseInt64("123")
	require.NoError(t, err)
	assert.Equal(t, int64(123), n)

	n, err = ParseInt64("-9223372036854775808")
	require.NoError(t, err)
	assert.Equal(t, int64(-9223372036854775808), n)

	_, err = ParseInt64("123.456")
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = ParseInt64("9223372036854775808")
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestParseSize(t *testing.T) {
	n, err := ParseSize("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), n)

	_, err = ParseSize("-1")
	assert.Error(t, err)
	_, err = ParseSize("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseUint16(t *testing.T) {
	n, err := ParseUint16("65535")
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), n)

	_, err = ParseUint16("65536")
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = ParseUint16("")
	assert.ErrorIs(t, err, ErrEmpty)
}
