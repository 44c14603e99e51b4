package gamemode

import "time"

// Clock is a monotonic millisecond source with an arbitrary origin.
type Clock interface {
	Ticks() int64
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	origin time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// Ticks returns milliseconds since the clock was created
func (c *SystemClock) Ticks() int64 {
	return time.Since(c.origin).Milliseconds()
}
