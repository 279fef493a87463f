// internal/core/ports/ports.go
package ports

import (
	"context"

	"randomnet/internal/core/domain"
)

// Generator produces an unbounded stream of candidate URLs. Next never
// blocks and never runs out; duplicates are possible and acceptable.
type Generator interface {
	Next() string
}

// Prober performs one bounded-time liveness check of a candidate.
// All failure modes are folded into the outcome; Probe never returns an
// error to its caller.
type Prober interface {
	Probe(ctx context.Context, candidate string) domain.ProbeOutcome
}

// Classifier decides whether a decoded page body looks like genuine
// content rather than a parked or placeholder page.
type Classifier interface {
	Genuine(body string) bool
}

// Sink receives one Discovery per success. Sink failures are reported to
// the caller but never abort the engine.
type Sink interface {
	Name() string
	Handle(d domain.Discovery) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(d domain.Discovery) error

func (f SinkFunc) Name() string                    { return "func" }
func (f SinkFunc) Handle(d domain.Discovery) error { return f(d) }
