package clock

import "time"

// FormatTimeLen is the length of a string produced by FormatTime.
const FormatTimeLen = 19

const timeLayout = "2006-01-02 15:04:05"

// Clock supplies monotonic uptime and wall-clock time as integers.
type Clock interface {
	// UptimeMillis is monotonic; only differences between calls are meaningful.
	UptimeMillis() int64
	UptimeMicros() int64
	WallClockSeconds() int64
	WallClockMillis() int64
}

type systemClock struct {
	start time.Time
}

var system = &systemClock{start: time.Now()}

// System returns the process clock. Uptime counts from process start using
// the monotonic reading that time.Now carries.
func System() Clock {
	return system
}

func (c *systemClock) UptimeMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

func (c *systemClock) UptimeMicros() int64 {
	return time.Since(c.start).Microseconds()
}

func (c *systemClock) WallClockSeconds() int64 {
	return time.Now().Unix()
}

func (c *systemClock) WallClockMillis() int64 {
	return time.Now().UnixMilli()
}

// FormatTime renders t in local time as YYYY-MM-DD HH:MM:SS.
func FormatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

// FormatUnix is FormatTime for seconds since the epoch.
func FormatUnix(sec int64) string {
	return FormatTime(time.Unix(sec, 0))
}

// Now formats the current wall-clock time of c.
func Now(c Clock) string {
	return FormatTime(time.UnixMilli(c.WallClockMillis()))
}
