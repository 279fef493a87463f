// Package rate provides a token bucket limiter used to cap the probe rate.
package rate

import (
	"context"
	"sync"
	"time"
)

// Limiter is a token bucket. Tokens refill continuously at `rate` per
// second up to `burst`; each allowed operation consumes one token.
type Limiter struct {
	rate  float64
	burst int

	mu     sync.Mutex
	tokens float64
	last   time.Time
}

// New creates a limiter allowing `rate` operations per second with the
// given burst capacity. The bucket starts full.
func New(rate float64, burst int) *Limiter {
	if rate <= 0 {
		rate = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		rate:   rate,
		burst:  burst,
		tokens: float64(burst),
		last:   time.Now(),
	}
}

// Wait blocks until a token is available or the context is canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		if l.Allow() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.waitDuration()):
		}
	}
}

// Allow consumes a token if one is available, without blocking.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(time.Now())
	if l.tokens >= 1 {
		l.tokens--
		return true
	}
	return false
}

// Tokens returns the current number of available tokens.
func (l *Limiter) Tokens() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(time.Now())
	return l.tokens
}

// advance refills the bucket for elapsed time. Caller holds l.mu.
func (l *Limiter) advance(now time.Time) {
	l.tokens += now.Sub(l.last).Seconds() * l.rate
	if l.tokens > float64(l.burst) {
		l.tokens = float64(l.burst)
	}
	l.last = now
}

func (l *Limiter) waitDuration() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(time.Now())
	if l.tokens >= 1 {
		return 0
	}
	needed := (1.0 - l.tokens) / l.rate
	return time.Duration(needed * float64(time.Second))
}
