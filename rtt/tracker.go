// Package rtt smooths round-trip time samples per target and exports the
// smoothed values as Prometheus metrics.
package rtt

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bostick/common/accumulator"
	"github.com/bostick/common/clock"
	"github.com/bostick/common/logging"
)

var (
	ErrEmptyTarget    = errors.New("rtt: empty target")
	ErrNegativeSample = errors.New("rtt: negative sample")
)

// Snapshot is the state of one target's window.
type Snapshot struct {
	Target       string        `json:"target"`
	FilteredMean time.Duration `json:"filtered_mean"`
	Mean         time.Duration `json:"mean"`
	Last         time.Duration `json:"last"`
	Samples      int           `json:"samples"`
	UpdatedAt    int64         `json:"updated_at_ms"`
}

type window struct {
	acc       *accumulator.Accumulator
	updatedAt int64
}

// Tracker keeps one accumulator per target. Samples are stored in
// microseconds. It is safe for concurrent use.
type Tracker struct {
	capacity int
	log      *logging.Logger
	clock    clock.Clock

	mu      sync.RWMutex
	windows map[string]*window

	filteredMean  *prometheus.GaugeVec
	last          *prometheus.GaugeVec
	windowSamples *prometheus.GaugeVec
	samplesTotal  *prometheus.CounterVec
}

// Option configures a Tracker.
type Option func(*options)

type options struct {
	log       *logging.Logger
	clock     clock.Clock
	namespace string
}

func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.log = l }
}

func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithNamespace prefixes every metric name with ns_.
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// NewTracker returns a Tracker whose windows hold capacity samples each.
func NewTracker(capacity int, opts ...Option) (*Tracker, error) {
	if _, err := accumulator.New(capacity); err != nil {
		return nil, err
	}
	o := options{clock: clock.System()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logging.Default("rtt")
	}

	return &Tracker{
		capacity: capacity,
		log:      o.log,
		clock:    o.clock,
		windows:  make(map[string]*window),
		filteredMean: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: o.namespace,
				Name:      "rtt_filtered_mean_ms",
				Help:      "Outlier-filtered mean RTT over the sliding window (ms)",
			},
			[]string{"target"},
		),
		last: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: o.namespace,
				Name:      "rtt_last_ms",
				Help:      "Most recent RTT sample (ms)",
			},
			[]string{"target"},
		),
		windowSamples: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: o.namespace,
				Name:      "rtt_window_samples",
				Help:      "Number of samples in the sliding window",
			},
			[]string{"target"},
		),
		samplesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Name:      "rtt_samples_total",
				Help:      "Total RTT samples observed",
			},
			[]string{"target"},
		),
	}, nil
}

// Observe adds one RTT sample for target.
func (t *Tracker) Observe(target string, rtt time.Duration) error {
	if target == "" {
		return ErrEmptyTarget
	}
	if rtt < 0 {
		return fmt.Errorf("%w: %s %v", ErrNegativeSample, target, rtt)
	}

	t.mu.Lock()
	w, ok := t.windows[target]
	if !ok {
		acc, _ := accumulator.New(t.capacity)
		w = &window{acc: acc}
		t.windows[target] = w
	}
	w.acc.Push(rtt.Microseconds())
	w.updatedAt = t.clock.WallClockMillis()
	fm, _ := w.acc.FilteredMean()
	n := w.acc.Len()
	t.filteredMean.WithLabelValues(target).Set(fm / 1e3)
	t.last.WithLabelValues(target).Set(float64(rtt.Microseconds()) / 1e3)
	t.windowSamples.WithLabelValues(target).Set(float64(n))
	t.samplesTotal.WithLabelValues(target).Inc()
	t.mu.Unlock()

	t.log.Debugf("observed %s rtt=%v filtered_mean=%.3fms samples=%d", target, rtt, fm/1e3, n)
	return nil
}

// Snapshot returns the current state for target.
func (t *Tracker) Snapshot(target string) (Snapshot, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	w, ok := t.windows[target]
	if !ok {
		return Snapshot{}, false
	}
	fm, err := w.acc.FilteredMean()
	if err != nil {
		return Snapshot{}, false
	}
	mean, _ := w.acc.Mean()
	last, _ := w.acc.Last()
	return Snapshot{
		Target:       target,
		FilteredMean: time.Duration(fm * float64(time.Microsecond)),
		Mean:         time.Duration(mean * float64(time.Microsecond)),
		Last:         time.Duration(last) * time.Microsecond,
		Samples:      w.acc.Len(),
		UpdatedAt:    w.updatedAt,
	}, true
}

// Targets returns every target observed so far, sorted.
func (t *Tracker) Targets() []string {
	t.mu.RLock()
	out := make([]string, 0, len(t.windows))
	for name := range t.windows {
		out = append(out, name)
	}
	t.mu.RUnlock()
	slices.Sort(out)
	return out
}

// Forget drops the window and the exported series for target.
func (t *Tracker) Forget(target string) {
	t.mu.Lock()
	delete(t.windows, target)
	t.filteredMean.DeleteLabelValues(target)
	t.last.DeleteLabelValues(target)
	t.windowSamples.DeleteLabelValues(target)
	t.samplesTotal.DeleteLabelValues(target)
	t.mu.Unlock()
	t.log.Infof("forgot target %s", target)
}

// Describe implements prometheus.Collector.
func (t *Tracker) Describe(ch chan<- *prometheus.Desc) {
	t.filteredMean.Describe(ch)
	t.last.Describe(ch)
	t.windowSamples.Describe(ch)
	t.samplesTotal.Describe(ch)
}

// Collect implements prometheus.Collector.
func (t *Tracker) Collect(ch chan<- prometheus.Metric) {
	t.filteredMean.Collect(ch)
	t.last.Collect(ch)
	t.windowSamples.Collect(ch)
	t.samplesTotal.Collect(ch)
}
