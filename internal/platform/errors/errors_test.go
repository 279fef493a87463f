// internal/platform/errors/errors_test.go
package errors

import (
	"testing"
)

func TestWrap(t *testing.T) {
	base := New("open failed")
	wrapped := Wrap(base, "load wordlist")

	if wrapped.Error() != "load wordlist: open failed" {
		t.Errorf("unexpected message: %s", wrapped.Error())
	}
	if !Is(wrapped, base) {
		t.Error("wrapped error should match its cause")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestWrapfFormats(t *testing.T) {
	err := Wrapf(ErrInvalidConfig, "count must be positive, got %d", -3)

	if !Is(err, ErrInvalidConfig) {
		t.Error("Wrapf should preserve the sentinel")
	}
	want := "count must be positive, got -3: invalid configuration"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestSentinelHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		check    func(error) bool
		expected bool
	}{
		{"empty wordlist direct", ErrEmptyWordlist, IsEmptyWordlist, true},
		{"empty wordlist wrapped", Wrap(ErrEmptyWordlist, "corncob.txt"), IsEmptyWordlist, true},
		{"invalid config wrapped", Wrapf(ErrInvalidConfig, "handler %q", "x"), IsInvalidConfig, true},
		{"unrelated error", New("boom"), IsEmptyWordlist, false},
		{"nil error", nil, IsInvalidConfig, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	a, b := New("a"), New("b")

	joined := Join(a, nil, b)
	if !Is(joined, a) || !Is(joined, b) {
		t.Error("joined error should match both causes")
	}
	if Join(nil, nil) != nil {
		t.Error("Join of nils should be nil")
	}
}
