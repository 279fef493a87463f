// Package errors extends the standard errors package with wrapping helpers
// and the sentinel errors used across randomnet.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors. Probe-level failures are never errors (they are probe
// outcomes); these cover the startup and configuration paths only.
var (
	// ErrEmptyWordlist indicates the vocabulary source yielded no words.
	ErrEmptyWordlist = errors.New("wordlist is empty")

	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoSignatures indicates the classifier was built without any
	// parked-page signatures.
	ErrNoSignatures = errors.New("no parked-page signatures")
)

type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *wrappedError) Unwrap() error { return e.cause }

// Wrap wraps an error with additional context. Returns nil for a nil err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, cause: err}
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, args...), cause: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain matching the target type.
func As(err error, target any) bool { return errors.As(err, target) }

// New creates a new error with the given message.
func New(msg string) error { return errors.New(msg) }

// Errorf formats a new error value.
func Errorf(format string, args ...any) error { return fmt.Errorf(format, args...) }

// Join wraps the given errors into one, discarding nils.
func Join(errs ...error) error { return errors.Join(errs...) }

// IsEmptyWordlist reports whether the error means the vocabulary was empty.
func IsEmptyWordlist(err error) bool { return Is(err, ErrEmptyWordlist) }

// IsInvalidConfig reports whether the error is a configuration error.
func IsInvalidConfig(err error) bool { return Is(err, ErrInvalidConfig) }
