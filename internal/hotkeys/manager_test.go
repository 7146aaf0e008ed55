package hotkeys

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(ms int) time.Time {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(ms) * time.Millisecond)
}

func TestManagerDoubleCopyTriggers(t *testing.T) {
	source := NewFakeSource()
	var triggers atomic.Int32
	m := NewManager(source, 500*time.Millisecond, func() {
		triggers.Add(1)
	})
	require.NoError(t, m.Start())

	source.Press(at(0))
	assert.Equal(t, int32(0), triggers.Load())

	source.Press(at(200))
	assert.Equal(t, int32(1), triggers.Load())
}

func TestManagerSingleCopyDoesNotTrigger(t *testing.T) {
	source := NewFakeSource()
	var triggers atomic.Int32
	m := NewManager(source, 500*time.Millisecond, func() {
		triggers.Add(1)
	})
	require.NoError(t, m.Start())

	source.Press(at(0))
	source.Press(at(1000))
	assert.Equal(t, int32(0), triggers.Load())
}

func TestManagerThirdPressStartsFreshPair(t *testing.T) {
	source := NewFakeSource()
	var triggers atomic.Int32
	m := NewManager(source, 500*time.Millisecond, func() {
		triggers.Add(1)
	})
	require.NoError(t, m.Start())

	source.Press(at(0))
	source.Press(at(200))
	assert.Equal(t, int32(1), triggers.Load())

	// Immediately after a trigger the state is cleared, so the third press
	// arms a new pair instead of re-triggering.
	source.Press(at(300))
	assert.Equal(t, int32(1), triggers.Load())

	source.Press(at(450))
	assert.Equal(t, int32(2), triggers.Load())
}

func TestManagerStopMakesSourceUnavailable(t *testing.T) {
	source := NewFakeSource()
	m := NewManager(source, 500*time.Millisecond, func() {})
	require.NoError(t, m.Start())
	assert.True(t, m.IsAvailable())

	m.Stop()
	assert.False(t, m.IsAvailable())
}

func TestManagerStopResetsDetectorState(t *testing.T) {
	source := NewFakeSource()
	var triggers atomic.Int32
	m := NewManager(source, 500*time.Millisecond, func() {
		triggers.Add(1)
	})
	require.NoError(t, m.Start())

	source.Press(at(0))
	m.ResetDetector()
	source.Press(at(200))
	assert.Equal(t, int32(0), triggers.Load())
}

func TestManagerFaultySignalHandlerSuspendsSource(t *testing.T) {
	source := NewFakeSource()
	m := NewManager(source, 500*time.Millisecond, func() {
		panic("consumer bug")
	})
	require.NoError(t, m.Start())

	// Each double copy panics in the trigger callback; after the fault
	// threshold the source suspends itself rather than crash the host.
	for i := 0; i < defaultMaxFaults; i++ {
		base := i * 2000
		source.Press(at(base))
		source.Press(at(base + 100))
	}
	assert.False(t, m.IsAvailable())
}

func TestManagerSetIntervalApplies(t *testing.T) {
	source := NewFakeSource()
	var triggers atomic.Int32
	m := NewManager(source, 500*time.Millisecond, func() {
		triggers.Add(1)
	})
	require.NoError(t, m.Start())

	m.SetInterval(100 * time.Millisecond)
	source.Press(at(0))
	source.Press(at(300))
	assert.Equal(t, int32(0), triggers.Load())

	source.Press(at(350))
	assert.Equal(t, int32(1), triggers.Load())
}
