package strutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmpty is returned when parsing an empty string.
var ErrEmpty = errors.New("strutil: empty input")

// Split breaks s at every delim. Like reading tokens with getline, a
// trailing delimiter does not produce a final empty token and an empty s
// yields no tokens.
func Split(s string, delim byte) []string {
	if s == "" {
		return nil
	}
	tokens := strings.Split(s, string(delim))
	if tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// Escape replaces each newline with the two characters \n.
func Escape(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

func ParseInt(s string) (int, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse int: %w", err)
	}
	return n, nil
}

func ParseInt64(s string) (int64, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse int64: %w", err)
	}
	return n, nil
}

// ParseSize parses a non-negative decimal size.
func ParseSize(s string) (uint64, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse size: %w", err)
	}
	return n, nil
}

// ParseUint16 rejects values above 65535.
func ParseUint16(s string) (uint16, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("parse uint16: %w", err)
	}
	return uint16(n), nil
}
