package hotkeys

import (
	"fmt"
	"log"
	"time"

	"github.com/yterada/cctrans/internal/detector"
)

// Manager wires a keyboard Source to the double-copy detector and fires the
// trigger callback once per detected double copy. The callback runs on the
// hook goroutine and must hand work off immediately (TranslateAsync returns
// without blocking).
type Manager struct {
	source    Source
	detector  *detector.Detector
	onTrigger func()
}

func NewManager(source Source, interval time.Duration, onTrigger func()) *Manager {
	return &Manager{
		source:    source,
		detector:  detector.New(interval),
		onTrigger: onTrigger,
	}
}

func (m *Manager) Start() error {
	if err := m.source.Start(m.handleSignal); err != nil {
		return fmt.Errorf("starting keyboard source: %v", err)
	}
	return nil
}

func (m *Manager) Stop() {
	m.source.Stop()
	m.detector.Reset()
}

func (m *Manager) IsAvailable() bool {
	return m.source.IsAvailable()
}

// SetInterval applies a new double-copy window, e.g. after a config reload.
func (m *Manager) SetInterval(interval time.Duration) {
	m.detector.SetInterval(interval)
}

// ResetDetector clears a pending first press, e.g. on explicit cancel.
func (m *Manager) ResetDetector() {
	m.detector.Reset()
}

func (m *Manager) handleSignal(t time.Time) {
	if !m.detector.Register(t) {
		return
	}
	log.Printf("[HOOK] Double copy detected")
	if m.onTrigger != nil {
		m.onTrigger()
	}
}
