// Package accumulator keeps a sliding window of int64 samples and a mean of
// that window that is robust to outliers.
package accumulator

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/bostick/common/mathutil"
)

var (
	// ErrInvalidCapacity is returned by New for a capacity below 1.
	ErrInvalidCapacity = errors.New("accumulator: capacity must be at least 1")

	// ErrEmpty is returned when a statistic is read before the first Push.
	ErrEmpty = errors.New("accumulator: no samples")
)

// Accumulator is a fixed-size ring buffer of samples. After every Push it
// recomputes the filtered mean: the mean of the samples lying within one
// sample standard deviation of the window median.
//
// An Accumulator is not safe for concurrent use.
type Accumulator struct {
	buf          []int64
	index        int
	sum          int64
	filteredMean float64
}

// New returns an empty accumulator retaining at most capacity samples.
func New(capacity int) (*Accumulator, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &Accumulator{
		buf: make([]int64, 0, capacity),
	}, nil
}

// Push inserts v, evicting the oldest sample once the window is full.
func (a *Accumulator) Push(v int64) {
	if len(a.buf) < cap(a.buf) {
		a.buf = append(a.buf, v)
	} else {
		a.sum -= a.buf[a.index]
		a.buf[a.index] = v
	}
	a.sum += v
	a.index = (a.index + 1) % cap(a.buf)

	if len(a.buf) == 1 {
		a.filteredMean = float64(v)
		return
	}
	a.filteredMean = robustMean(a.buf)
}

// FilteredMean returns the value computed by the most recent Push.
func (a *Accumulator) FilteredMean() (float64, error) {
	if len(a.buf) == 0 {
		return 0, ErrEmpty
	}
	return a.filteredMean, nil
}

// Mean is the plain mean of the window, kept from a running sum.
func (a *Accumulator) Mean() (float64, error) {
	if len(a.buf) == 0 {
		return 0, ErrEmpty
	}
	return float64(a.sum) / float64(len(a.buf)), nil
}

// Last returns the most recently pushed sample. ok is false when empty.
func (a *Accumulator) Last() (v int64, ok bool) {
	if len(a.buf) == 0 {
		return 0, false
	}
	return a.buf[mathutil.EuclideanMod(a.index-1, cap(a.buf))], true
}

func (a *Accumulator) Empty() bool {
	return len(a.buf) == 0
}

// Len returns the number of samples currently in the window.
func (a *Accumulator) Len() int {
	return len(a.buf)
}

// Cap returns the window capacity.
func (a *Accumulator) Cap() int {
	return cap(a.buf)
}

// Values returns a copy of the window, oldest first.
func (a *Accumulator) Values() []int64 {
	out := make([]int64, len(a.buf))
	if len(a.buf) < cap(a.buf) {
		copy(out, a.buf)
		return out
	}
	// Full: the oldest sample sits at index.
	n := copy(out, a.buf[a.index:])
	copy(out[n:], a.buf[:a.index])
	return out
}

// summary holds the window statistics the filter is built from.
type summary struct {
	mean   float64
	stddev float64 // sample standard deviation, N-1
	median float64
}

func summarize(data stats.Float64Data) summary {
	var s summary
	s.mean, _ = stats.Mean(data)
	s.stddev, _ = stats.StandardDeviationSample(data)
	s.median, _ = stats.Median(data)
	return s
}

// robustMean needs at least two samples.
func robustMean(window []int64) float64 {
	data := make(stats.Float64Data, len(window))
	for i, v := range window {
		data[i] = float64(v)
	}
	return filterMean(data, summarize(data))
}

// filterMean averages the samples within s.stddev of s.median, inclusive.
// If every sample is rejected the unfiltered mean is returned.
func filterMean(data stats.Float64Data, s summary) float64 {
	kept := make(stats.Float64Data, 0, len(data))
	for _, x := range data {
		if math.Abs(x-s.median) <= s.stddev {
			kept = append(kept, x)
		}
	}
	m, err := stats.Mean(kept)
	if err != nil {
		return s.mean
	}
	return m
}
