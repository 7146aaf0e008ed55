package hotkeys

import (
	"log"
	"sync"
	"time"
)

// FakeSource is an in-memory Source for tests. Press simulates a qualifying
// Ctrl+C key-down; the fake applies the same panic guard as the production
// backend so fault-suspension behavior can be exercised without a real hook.
type FakeSource struct {
	mu        sync.Mutex
	onSignal  func(time.Time)
	running   bool
	available bool
	guard     *faultGuard
}

func NewFakeSource() *FakeSource {
	return &FakeSource{
		available: true,
		guard:     newFaultGuard(defaultMaxFaults, defaultFaultWindow),
	}
}

func (s *FakeSource) Start(onSignal func(time.Time)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSignal = onSignal
	s.running = true
	s.available = true
	s.guard.Reset()
	return nil
}

func (s *FakeSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.available = false
}

func (s *FakeSource) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running && s.available
}

// Press delivers one signal at time t, as if Ctrl+C went down.
func (s *FakeSource) Press(t time.Time) {
	s.mu.Lock()
	onSignal := s.onSignal
	running := s.running
	s.mu.Unlock()
	if !running || onSignal == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[HOOK] Signal callback panic: %v", r)
			if s.guard.Record(time.Now()) {
				s.Stop()
			}
		}
	}()
	onSignal(t)
}
