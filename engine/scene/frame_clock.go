package scene

import "time"

// minFrameDt is the smallest delta time the clock will report. Frames that
// complete faster than this are treated as running at the floor rate so the
// field decay and ball motion never step by near-zero amounts.
const minFrameDt = 1.0 / 60.0

// frameClock tracks elapsed and per-frame time for the scene update loop.
// The now function is injectable for tests.
type frameClock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
}

func newFrameClock(now func() time.Time) *frameClock {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &frameClock{
		now:   now,
		start: t,
		last:  t,
	}
}

// Tick advances the clock by one frame and returns the elapsed time since
// startup and the clamped frame delta, both in seconds.
//
// Returns:
//   - float64: seconds since the clock was created
//   - float32: the frame delta, floored at minFrameDt
func (c *frameClock) Tick() (float64, float32) {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t

	if dt < minFrameDt {
		dt = minFrameDt
	}

	return t.Sub(c.start).Seconds(), float32(dt)
}
