package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickBeforeIntervalElapses(t *testing.T) {
	p := NewProfiler()
	p.SetLogging(false)

	assert.False(t, p.Tick())
	assert.Equal(t, 0.0, p.FPS())
}

func TestTickComputesFPSAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.SetLogging(false)

	// Nine frames inside the interval, then backdate its start so the
	// tenth tick closes it.
	for range 9 {
		assert.False(t, p.Tick())
	}
	p.lastTime = time.Now().Add(-2 * time.Second)

	assert.True(t, p.Tick())
	// 10 frames over roughly 2 seconds.
	assert.InDelta(t, 5.0, p.FPS(), 1.0)

	// The interval counters reset after logging.
	assert.False(t, p.Tick())
}

func TestFPSSurvivesLoggingDisabled(t *testing.T) {
	p := NewProfiler()
	p.SetLogging(false)
	p.lastTime = time.Now().Add(-time.Second)

	assert.True(t, p.Tick())
	assert.Greater(t, p.FPS(), 0.0)
}
