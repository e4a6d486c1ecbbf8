package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bostick/common/file"
	"github.com/bostick/common/random"
	"github.com/bostick/common/strutil"
)

var errBadLine = errors.New("malformed sample line")

type sample struct {
	target string
	rtt    time.Duration
}

// parseLine reads "<target> <rtt>". The rtt is a bare integer of
// milliseconds or a Go duration such as 1.5ms. Blank lines and lines
// starting with # yield ok=false and no error.
func parseLine(line string) (s sample, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return sample{}, false, nil
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return sample{}, false, fmt.Errorf("%w: want 2 fields, got %d", errBadLine, len(fields))
	}

	if ms, err := strutil.ParseInt64(fields[1]); err == nil {
		return sample{target: fields[0], rtt: time.Duration(ms) * time.Millisecond}, true, nil
	}
	d, err := time.ParseDuration(fields[1])
	if err != nil {
		return sample{}, false, fmt.Errorf("%w: %v", errBadLine, err)
	}
	return sample{target: fields[0], rtt: d}, true, nil
}

// readLines loads the whole input: the named file, or r when path is "".
func readLines(path string, r io.Reader) ([]string, error) {
	var raw []byte
	var err error
	if path == "" {
		raw, err = io.ReadAll(r)
	} else {
		raw, err = file.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return strutil.Split(string(raw), '\n'), nil
}

// synthesize produces n samples per target around a per-target base RTT,
// with roughly one in twenty samples a large outlier.
func synthesize(src *random.Source, targets []string, n int) []sample {
	out := make([]sample, 0, len(targets)*n)
	bases := make([]int, len(targets))
	for i := range targets {
		bases[i] = src.IntInRange(5, 50)
	}
	for j := 0; j < n; j++ {
		for i, target := range targets {
			ms := float32(bases[i]) + src.Float32InRange(-1, 1)
			if src.IntInRange(1, 20) == 1 {
				ms *= 10
			}
			out = append(out, sample{
				target: target,
				rtt:    time.Duration(float64(ms) * float64(time.Millisecond)),
			})
		}
	}
	return out
}
