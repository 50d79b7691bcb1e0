package clock

import "time"

// Timer fires at most once per interval. Time is supplied by the caller
// in seconds, typically from the window library's monotonic clock.
type Timer struct {
	interval float64
	last     float64
}

func NewTimer(interval time.Duration) *Timer {
	return &Timer{interval: interval.Seconds()}
}

// Triggered reports whether a full interval has elapsed since the last
// trigger, and if so restarts the interval at now.
func (t *Timer) Triggered(now float64) bool {
	if now-t.last >= t.interval {
		t.last = now
		return true
	}
	return false
}

// Restart makes the next interval start at now.
func (t *Timer) Restart(now float64) {
	t.last = now
}

func (t *Timer) Interval() time.Duration {
	return time.Duration(t.interval * float64(time.Second))
}
