package hotkeys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFaultGuardThreshold(t *testing.T) {
	g := newFaultGuard(5, 10*time.Second)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		assert.False(t, g.Record(base.Add(time.Duration(i)*time.Second)))
	}
	assert.True(t, g.Record(base.Add(4*time.Second)))
}

func TestFaultGuardWindowExpiry(t *testing.T) {
	g := newFaultGuard(5, 10*time.Second)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		assert.False(t, g.Record(base.Add(time.Duration(i)*time.Second)))
	}

	// A fault far outside the window starts a fresh run.
	assert.False(t, g.Record(base.Add(time.Minute)))
	for i := 1; i < 4; i++ {
		assert.False(t, g.Record(base.Add(time.Minute).Add(time.Duration(i)*time.Second)))
	}
	assert.True(t, g.Record(base.Add(time.Minute).Add(4*time.Second)))
}

func TestFaultGuardReset(t *testing.T) {
	g := newFaultGuard(2, 10*time.Second)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, g.Record(base))
	g.Reset()
	assert.False(t, g.Record(base.Add(time.Second)))
	assert.True(t, g.Record(base.Add(2*time.Second)))
}

func TestFaultGuardDefaults(t *testing.T) {
	g := newFaultGuard(0, 0)
	assert.Equal(t, defaultMaxFaults, g.maxFaults)
	assert.Equal(t, defaultFaultWindow, g.window)
}
