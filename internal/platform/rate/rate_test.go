// internal/platform/rate/rate_test.go
package rate

import (
	"context"
	"testing"
	"time"
)

func TestNewClampsInvalidValues(t *testing.T) {
	l := New(-1, 0)

	if l.rate != 1 {
		t.Errorf("expected rate clamped to 1, got %f", l.rate)
	}
	if l.burst != 1 {
		t.Errorf("expected burst clamped to 1, got %d", l.burst)
	}
}

func TestAllowConsumesBurst(t *testing.T) {
	l := New(0.001, 2) // refill slow enough to not interfere

	if !l.Allow() {
		t.Error("first token should be allowed")
	}
	if !l.Allow() {
		t.Error("second token should be allowed")
	}
	if l.Allow() {
		t.Error("bucket should be empty after burst")
	}
}

func TestWaitReturnsImmediatelyWithTokens(t *testing.T) {
	l := New(1, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := l.Wait(ctx); err != nil {
		t.Errorf("Wait with a full bucket should not fail: %v", err)
	}
}

func TestWaitHonorsCanceledContext(t *testing.T) {
	l := New(0.001, 1)
	l.Allow() // drain

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("Wait on an empty bucket with canceled context should fail")
	}
}

func TestTokensRefill(t *testing.T) {
	l := New(100, 1)
	l.Allow() // drain

	time.Sleep(50 * time.Millisecond)
	if l.Tokens() < 1 {
		t.Errorf("bucket should have refilled, tokens: %f", l.Tokens())
	}
}
