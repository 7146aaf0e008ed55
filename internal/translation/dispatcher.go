package translation

import (
	"log"
	"sync"
	"time"
)

// Dispatcher moves a finished Result from the worker goroutine to the
// consumer without data races. It is a single-slot hand-off: publishing a
// new result replaces an unconsumed older one (the newest result wins, the
// replaced one is logged). The manager's status field stays the authority
// on whether a delivered result is still current.
type Dispatcher struct {
	mu   sync.Mutex
	slot chan *Result
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		slot: make(chan *Result, 1),
	}
}

// Publish hands a result to the consumer side. Never blocks the worker.
func (d *Dispatcher) Publish(result *Result) {
	if result == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	select {
	case stale := <-d.slot:
		log.Printf("[DISPATCH] Replacing unconsumed result (status=%s, %d chars)",
			stale.Status, len(stale.SourceText))
	default:
	}
	d.slot <- result
}

// Poll returns the pending result without blocking, or nil if none.
func (d *Dispatcher) Poll() *Result {
	select {
	case result := <-d.slot:
		return result
	default:
		return nil
	}
}

// Wait blocks up to timeout for a result. Returns nil on timeout.
func (d *Dispatcher) Wait(timeout time.Duration) *Result {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-d.slot:
		return result
	case <-timer.C:
		return nil
	}
}
