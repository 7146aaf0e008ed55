package hotkeys

import "time"

const (
	defaultMaxFaults   = 5
	defaultFaultWindow = 10 * time.Second
)

// faultGuard bounds consecutive callback faults on the hook goroutine. A
// low-level keyboard hook that keeps throwing or blocking can be silently
// unregistered by the OS, so after maxFaults faults inside the rolling
// window the hook is suspended instead of being left in an undefined state.
//
// Not goroutine-safe: Record and Reset are called only from the hook
// goroutine (single writer).
type faultGuard struct {
	maxFaults int
	window    time.Duration
	count     int
	lastFault time.Time
}

func newFaultGuard(maxFaults int, window time.Duration) *faultGuard {
	if maxFaults <= 0 {
		maxFaults = defaultMaxFaults
	}
	if window <= 0 {
		window = defaultFaultWindow
	}
	return &faultGuard{maxFaults: maxFaults, window: window}
}

// Record registers a fault at time t and reports whether the threshold was
// reached. A fault landing more than window after the previous one starts a
// fresh run, so only a dense burst of faults trips the guard.
func (g *faultGuard) Record(t time.Time) bool {
	if g.count > 0 && t.Sub(g.lastFault) > g.window {
		g.count = 0
	}
	g.count++
	g.lastFault = t
	return g.count >= g.maxFaults
}

// Reset clears the fault count, e.g. when the hook is reinstalled.
func (g *faultGuard) Reset() {
	g.count = 0
}
