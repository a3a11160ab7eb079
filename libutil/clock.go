package libutil

import "time"

// Clock measures wall time since it was created or last reset.
// Readings use the monotonic clock, so Elapsed never decreases.
type Clock struct {
	start   time.Time
	lastLap time.Time
	now     func() time.Time
}

func NewClock() *Clock {
	return newClockWith(time.Now)
}

func newClockWith(now func() time.Time) *Clock {
	t := now()
	return &Clock{
		start:   t,
		lastLap: t,
		now:     now,
	}
}

// Elapsed returns the seconds since the clock was started.
func (c *Clock) Elapsed() float64 {
	return c.now().Sub(c.start).Seconds()
}

// Lap returns the seconds since the previous call to Lap, or since the clock
// was started for the first call.
func (c *Clock) Lap() float64 {
	t := c.now()
	d := t.Sub(c.lastLap)
	c.lastLap = t
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

func (c *Clock) Reset() {
	t := c.now()
	c.start = t
	c.lastLap = t
}

// FpsCounter reports the instantaneous frame rate from the time between
// two consecutive ticks.
type FpsCounter struct {
	prev time.Time
	last int
	now  func() time.Time
}

func NewFpsCounter() *FpsCounter {
	return newFpsCounterWith(time.Now)
}

func newFpsCounterWith(now func() time.Time) *FpsCounter {
	return &FpsCounter{
		prev: now(),
		now:  now,
	}
}

// Tick marks the end of a frame and returns the frame rate it implies.
func (f *FpsCounter) Tick() int {
	t := f.now()
	us := t.Sub(f.prev).Microseconds()
	f.prev = t
	if us <= 0 {
		return f.last
	}
	f.last = int(1_000_000 / us)
	return f.last
}

// Last returns the value of the most recent Tick.
func (f *FpsCounter) Last() int {
	return f.last
}
