// internal/core/usecases/counter.go
package usecases

import "sync/atomic"

// Counter is the shared countdown that gates engine completion. It is
// initialized with the success target and decremented once per reported
// discovery, concurrently safe.
//
// Exactly one Decrement call observes the transition to zero. Decrements
// after that are tolerated no-ops: they keep reporting complete=true and
// never expose a negative remainder.
type Counter struct {
	remaining atomic.Int64
}

// NewCounter creates a counter for `count` successes. Values below 1 are
// clamped to 1 so the engine always terminates.
func NewCounter(count int64) *Counter {
	if count < 1 {
		count = 1
	}
	c := &Counter{}
	c.remaining.Store(count)
	return c
}

// Decrement consumes one success. It returns the remaining count (never
// negative) and whether the target has been reached. Only the call that
// takes the counter to exactly zero observes the transition; later calls
// are no-ops that also report complete.
func (c *Counter) Decrement() (remaining int64, complete bool) {
	n := c.remaining.Add(-1)
	if n <= 0 {
		return 0, true
	}
	return n, false
}

// Remaining returns the current remainder, clamped at zero.
func (c *Counter) Remaining() int64 {
	if n := c.remaining.Load(); n > 0 {
		return n
	}
	return 0
}
