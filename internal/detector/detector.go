package detector

import (
	"sync/atomic"
	"time"
)

// Detector turns a stream of copy signals into a single debounced trigger:
// two signals within the configured interval count as one "double copy".
//
// Register is only ever called from the hook goroutine (single writer), so
// lastCopy needs no lock. The interval is an atomic because SetInterval may
// be called from the config/UI side while the hook goroutine is reading it.
type Detector struct {
	interval atomic.Int64 // nanoseconds
	lastCopy time.Time
	hasLast  bool
}

const DefaultInterval = 500 * time.Millisecond

func New(interval time.Duration) *Detector {
	d := &Detector{}
	if interval <= 0 {
		interval = DefaultInterval
	}
	d.interval.Store(int64(interval))
	return d
}

// Register records a copy signal at time t and reports whether it completed
// a double copy. Boundary equality counts: delta == interval triggers.
// A trigger consumes both presses, so the next signal is a fresh first press.
func (d *Detector) Register(t time.Time) bool {
	if d.hasLast {
		elapsed := t.Sub(d.lastCopy)
		if elapsed >= 0 && elapsed <= d.Interval() {
			d.hasLast = false
			return true
		}
	}

	d.lastCopy = t
	d.hasLast = true
	return false
}

// Reset clears any pending first press, e.g. after an explicit cancel.
func (d *Detector) Reset() {
	d.hasLast = false
}

func (d *Detector) Interval() time.Duration {
	return time.Duration(d.interval.Load())
}

// SetInterval changes the detection window at runtime. Subsequent Register
// calls use the new value immediately.
func (d *Detector) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	d.interval.Store(int64(interval))
}
