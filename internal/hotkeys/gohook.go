package hotkeys

import (
	"fmt"
	"log"
	"sync"
	"time"

	hook "github.com/robotn/gohook"
)

// How long to wait for the OS to confirm the hook install before declaring
// the feature unavailable.
const hookStartTimeout = 500 * time.Millisecond

// GohookSource is the production Source backed by a global low-level
// keyboard hook. Its event loop runs on a dedicated goroutine, tracks the
// Ctrl modifier state itself, filters the IME key family, and wraps every
// signal callback in a panic guard so a consumer fault cannot take the hook
// loop down with it.
type GohookSource struct {
	mu        sync.Mutex
	running   bool
	available bool
	stop      chan struct{}

	// touched only by the hook goroutine
	guard *faultGuard
}

func NewGohookSource() *GohookSource {
	return &GohookSource{
		guard: newFaultGuard(defaultMaxFaults, defaultFaultWindow),
	}
}

func (s *GohookSource) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

func (s *GohookSource) Start(onSignal func(time.Time)) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()
	s.guard.Reset()

	events := hook.Start()
	confirmed := make(chan struct{})
	go s.run(events, stop, confirmed, onSignal)

	// The OS may refuse the install (privileges, unsupported session type).
	// Wait for the hook-enabled event before reporting success.
	select {
	case <-confirmed:
		s.mu.Lock()
		s.available = true
		s.mu.Unlock()
		log.Printf("[HOOK] Keyboard hook installed")
		return nil
	case <-time.After(hookStartTimeout):
		s.Stop()
		return fmt.Errorf("keyboard hook could not be installed")
	}
}

func (s *GohookSource) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.available = false
	close(s.stop)
	s.mu.Unlock()

	hook.End()
	log.Printf("[HOOK] Keyboard hook released")
}

func (s *GohookSource) run(events chan hook.Event, stop chan struct{}, confirmed chan struct{}, onSignal func(time.Time)) {
	ctrlDown := false
	confirmedSent := false

	for {
		select {
		case <-stop:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}

			switch ev.Kind {
			case hook.HookEnabled:
				if !confirmedSent {
					close(confirmed)
					confirmedSent = true
				}

			case hook.KeyDown, hook.KeyHold:
				rawcode := uint16(ev.Rawcode)
				if isExcludedKey(rawcode) {
					continue
				}
				if isControlKey(rawcode) {
					ctrlDown = true
					continue
				}
				if ev.Kind == hook.KeyDown && ctrlDown && isCopyKey(rawcode, ev.Keychar) {
					s.dispatch(onSignal)
				}

			case hook.KeyUp:
				rawcode := uint16(ev.Rawcode)
				if isExcludedKey(rawcode) {
					continue
				}
				if isControlKey(rawcode) {
					ctrlDown = false
				}
			}
		}
	}
}

// dispatch invokes the signal callback with a panic guard. Repeated faults
// within the rolling window suspend the hook entirely; the feature degrades
// to unavailable rather than risking an unstable hook loop.
func (s *GohookSource) dispatch(onSignal func(time.Time)) {
	defer func() {
		if r := recover(); r != nil {
			now := time.Now()
			log.Printf("[HOOK] Signal callback panic: %v", r)
			if s.guard.Record(now) {
				log.Printf("[HOOK] Too many callback faults in a short window, suspending keyboard hook")
				go s.Stop()
			}
		}
	}()

	onSignal(time.Now())
}
