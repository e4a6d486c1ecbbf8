package clock

import (
	"sync"
	"time"
)

// Manual is a Clock that only moves when told to. It is safe for concurrent use.
type Manual struct {
	mu     sync.Mutex
	uptime time.Duration
	wall   time.Time
}

// NewManual returns a Manual clock reading wall and zero uptime.
func NewManual(wall time.Time) *Manual {
	return &Manual{wall: wall}
}

// Advance moves both uptime and wall clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.uptime += d
	m.wall = m.wall.Add(d)
	m.mu.Unlock()
}

func (m *Manual) UptimeMillis() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uptime.Milliseconds()
}

func (m *Manual) UptimeMicros() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uptime.Microseconds()
}

func (m *Manual) WallClockSeconds() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wall.Unix()
}

func (m *Manual) WallClockMillis() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wall.UnixMilli()
}
