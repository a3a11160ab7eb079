package libutil_test

import (
	"testing"
	"time"

	"learn-gl/libutil"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (ft *fakeTime) now() time.Time {
	return ft.t
}

func (ft *fakeTime) advance(d time.Duration) {
	ft.t = ft.t.Add(d)
}

func TestClockElapsedMonotonic(t *testing.T) {
	clock := libutil.NewClock()
	prev := clock.Elapsed()
	for i := 0; i < 1000; i++ {
		curr := clock.Elapsed()
		if curr < prev {
			t.Fatalf("elapsed time went backwards: %v < %v", curr, prev)
		}
		prev = curr
	}
	assert.GreaterOrEqual(t, prev, 0.0)
}

func TestClockElapsedAndLap(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	clock := libutil.NewClockWith(ft.now)

	assert.Equal(t, 0.0, clock.Elapsed())

	ft.advance(250 * time.Millisecond)
	assert.InDelta(t, 0.25, clock.Lap(), 1e-9)
	ft.advance(500 * time.Millisecond)
	assert.InDelta(t, 0.5, clock.Lap(), 1e-9)
	assert.InDelta(t, 0.75, clock.Elapsed(), 1e-9)

	clock.Reset()
	assert.Equal(t, 0.0, clock.Elapsed())
	assert.Equal(t, 0.0, clock.Lap())
}

func TestFpsCounter(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	fps := libutil.NewFpsCounterWith(ft.now)

	ft.advance(time.Second / 60)
	assert.Equal(t, 60, fps.Tick())

	ft.advance(40 * time.Millisecond)
	assert.Equal(t, 25, fps.Tick())

	// no time passed: keep the previous reading instead of dividing by zero
	assert.Equal(t, 25, fps.Tick())
	assert.Equal(t, 25, fps.Last())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), libutil.Clamp(-3, 1, 45))
	assert.Equal(t, float32(45), libutil.Clamp(90, 1, 45))
	assert.Equal(t, float32(20), libutil.Clamp(20, 1, 45))
}
