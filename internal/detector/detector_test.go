package detector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(ms int) time.Time {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(ms) * time.Millisecond)
}

func TestSingleCopyDoesNotTrigger(t *testing.T) {
	d := New(500 * time.Millisecond)
	assert.False(t, d.Register(at(0)))
}

func TestDoubleCopyWithinIntervalTriggers(t *testing.T) {
	d := New(500 * time.Millisecond)
	assert.False(t, d.Register(at(0)))
	assert.True(t, d.Register(at(200)))
}

func TestBoundaryEqualityTriggers(t *testing.T) {
	d := New(500 * time.Millisecond)
	assert.False(t, d.Register(at(0)))
	assert.True(t, d.Register(at(500)))
}

func TestSlowSecondCopyDoesNotTrigger(t *testing.T) {
	d := New(500 * time.Millisecond)
	assert.False(t, d.Register(at(0)))
	assert.False(t, d.Register(at(501)))
	// the slow press became a fresh first press
	assert.True(t, d.Register(at(700)))
}

func TestThirdPressAfterTriggerIsFreshFirstPress(t *testing.T) {
	// Scenario: t=0.0 first, t=0.2 triggers, t=1.0 must not trigger because
	// the successful pair cleared the state at t=0.2.
	d := New(500 * time.Millisecond)
	assert.False(t, d.Register(at(0)))
	assert.True(t, d.Register(at(200)))
	assert.False(t, d.Register(at(1000)))
}

func TestImmediateThirdPressDoesNotRetrigger(t *testing.T) {
	d := New(500 * time.Millisecond)
	assert.False(t, d.Register(at(0)))
	assert.True(t, d.Register(at(100)))
	assert.False(t, d.Register(at(150)))
	// but it pairs with a following fourth press
	assert.True(t, d.Register(at(300)))
}

func TestReset(t *testing.T) {
	d := New(500 * time.Millisecond)
	assert.False(t, d.Register(at(0)))
	d.Reset()
	assert.False(t, d.Register(at(100)))
	assert.True(t, d.Register(at(200)))
}

func TestSetIntervalAppliesToNextEvaluation(t *testing.T) {
	d := New(500 * time.Millisecond)
	assert.False(t, d.Register(at(0)))
	d.SetInterval(100 * time.Millisecond)
	assert.False(t, d.Register(at(300)), "300ms gap exceeds new 100ms interval")

	assert.True(t, d.Register(at(350)))
	assert.Equal(t, 100*time.Millisecond, d.Interval())
}

func TestNonPositiveIntervalFallsBackToDefault(t *testing.T) {
	d := New(0)
	assert.Equal(t, DefaultInterval, d.Interval())
	d.SetInterval(-1)
	assert.Equal(t, DefaultInterval, d.Interval())
}
