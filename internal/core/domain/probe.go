// internal/core/domain/probe.go
package domain

import (
	"fmt"
	"time"
)

// ProbeStatus classifies the result of a single liveness probe.
type ProbeStatus int

const (
	// StatusAlive means the candidate returned 200 and passed the
	// content classifier (when one is configured).
	StatusAlive ProbeStatus = iota

	// StatusDead means the candidate responded with a non-200 status or
	// matched a parked-page signature.
	StatusDead

	// StatusTimeout means the probe did not complete within its deadline.
	StatusTimeout

	// StatusTransportError covers DNS failures, refused or reset
	// connections, TLS faults and every other socket-level error.
	StatusTransportError
)

// String returns the lowercase name of the status.
func (s ProbeStatus) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusDead:
		return "dead"
	case StatusTimeout:
		return "timeout"
	case StatusTransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ProbeOutcome is the immutable result of probing one candidate.
// Exactly one status holds per probe; outcomes are never retried.
type ProbeOutcome struct {
	Candidate string
	Status    ProbeStatus

	// Body holds the decoded response body. Only populated for alive
	// outcomes, and only when a content classifier required a body read.
	Body string

	Duration time.Duration
}

// Alive reports whether the outcome counts toward the success target.
func (o ProbeOutcome) Alive() bool {
	return o.Status == StatusAlive
}

// Discovery is one live site reported to the result sinks.
type Discovery struct {
	URL     string    `csv:"url"`
	Title   string    `csv:"title"`
	FoundAt time.Time `csv:"found_at"`
}

// RunStats accumulates counters for a whole engine run.
type RunStats struct {
	Batches         int
	Probes          int
	Alive           int
	Dead            int
	Timeouts        int
	TransportErrors int
	Elapsed         time.Duration
}

// Observe records one outcome in the stats.
func (s *RunStats) Observe(o ProbeOutcome) {
	s.Probes++
	switch o.Status {
	case StatusAlive:
		s.Alive++
	case StatusDead:
		s.Dead++
	case StatusTimeout:
		s.Timeouts++
	case StatusTransportError:
		s.TransportErrors++
	}
}
