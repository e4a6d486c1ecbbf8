package rtt

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bostick/common/accumulator"
	"github.com/bostick/common/clock"
	"github.com/bostick/common/logging"
)

func newTestTracker(t *testing.T, capacity int) (*Tracker, *clock.Manual, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logging.New("rtt-test", logging.NewTextHandler(&buf, slog.LevelDebug))
	c := clock.NewManual(time.Unix(1700000000, 0))
	tr, err := NewTracker(capacity, WithLogger(log), WithClock(c))
	require.NoError(t, err)
	return tr, c, &buf
}

func TestNewTrackerInvalidCapacity(t *testing.T) {
	_, err := NewTracker(0)
	assert.ErrorIs(t, err, accumulator.ErrInvalidCapacity)
}

func TestObserveRejectsBadInput(t *testing.T) {
	tr, _, _ := newTestTracker(t, 4)
	assert.ErrorIs(t, tr.Observe("", time.Millisecond), ErrEmptyTarget)
	assert.ErrorIs(t, tr.Observe("a", -time.Millisecond), ErrNegativeSample)
	assert.Empty(t, tr.Targets())
}

func TestSnapshot(t *testing.T) {
	tr, c, buf := newTestTracker(t, 5)

	_, ok := tr.Snapshot("gw")
	assert.False(t, ok)

	for _, ms := range []int{10, 10, 10, 10} {
		require.NoError(t, tr.Observe("gw", time.Duration(ms)*time.Millisecond))
	}
	c.Advance(time.Second)
	require.NoError(t, tr.Observe("gw", 100*time.Millisecond))

	s, ok := tr.Snapshot("gw")
	require.True(t, ok)
	assert.Equal(t, "gw", s.Target)
	assert.Equal(t, 10*time.Millisecond, s.FilteredMean)
	assert.Equal(t, 28*time.Millisecond, s.Mean)
	assert.Equal(t, 100*time.Millisecond, s.Last)
	assert.Equal(t, 5, s.Samples)
	assert.Equal(t, int64(1700000001000), s.UpdatedAt)

	assert.Contains(t, buf.String(), "observed gw")
}

func TestMetrics(t *testing.T) {
	tr, _, _ := newTestTracker(t, 5)
	for _, ms := range []int{10, 10, 10, 10, 100} {
		require.NoError(t, tr.Observe("gw", time.Duration(ms)*time.Millisecond))
	}
	require.NoError(t, tr.Observe("wan", 1500*time.Microsecond))

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(tr))

	assert.InDelta(t, 10.0, testutil.ToFloat64(tr.filteredMean.WithLabelValues("gw")), 1e-9)
	assert.InDelta(t, 100.0, testutil.ToFloat64(tr.last.WithLabelValues("gw")), 1e-9)
	assert.Equal(t, 5.0, testutil.ToFloat64(tr.windowSamples.WithLabelValues("gw")))
	assert.Equal(t, 5.0, testutil.ToFloat64(tr.samplesTotal.WithLabelValues("gw")))
	assert.InDelta(t, 1.5, testutil.ToFloat64(tr.last.WithLabelValues("wan")), 1e-9)

	expected := `
# HELP rtt_window_samples Number of samples in the sliding window
# TYPE rtt_window_samples gauge
rtt_window_samples{target="gw"} 5
rtt_window_samples{target="wan"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "rtt_window_samples"))
	assert.Equal(t, 8, testutil.CollectAndCount(tr))
}

func TestNamespace(t *testing.T) {
	tr, err := NewTracker(2, WithNamespace("edge"), WithLogger(logging.New("x", logging.NewTextHandler(&bytes.Buffer{}, slog.LevelInfo))))
	require.NoError(t, err)
	require.NoError(t, tr.Observe("a", time.Millisecond))
	assert.Equal(t, 1, testutil.CollectAndCount(tr, "edge_rtt_samples_total"))
}

func TestForget(t *testing.T) {
	tr, _, _ := newTestTracker(t, 3)
	require.NoError(t, tr.Observe("b", time.Millisecond))
	require.NoError(t, tr.Observe("a", time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, tr.Targets())

	tr.Forget("a")
	assert.Equal(t, []string{"b"}, tr.Targets())
	_, ok := tr.Snapshot("a")
	assert.False(t, ok)
	assert.Equal(t, 4, testutil.CollectAndCount(tr))
}

func TestConcurrentObserve(t *testing.T) {
	tr, _, _ := newTestTracker(t, 16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = tr.Observe("shared", time.Duration(i)*time.Millisecond)
				tr.Snapshot("shared")
			}
		}()
	}
	wg.Wait()

	s, ok := tr.Snapshot("shared")
	require.True(t, ok)
	assert.Equal(t, 16, s.Samples)
	assert.Equal(t, 800.0, testutil.ToFloat64(tr.samplesTotal.WithLabelValues("shared")))
}
