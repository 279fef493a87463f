// internal/platform/ui/presenter.go
package ui

import (
	"time"
)

// Mode selects the presenter implementation.
type Mode string

const (
	ModePTerm Mode = "pterm" // colored terminal output (default)
	ModeRaw   Mode = "raw"   // plain log lines
	ModeNone  Mode = "none"  // no visual output
)

// Presenter renders run progress. Implementations are only ever called
// from the orchestrator goroutine and from main, never concurrently.
type Presenter interface {
	// Start shows the run header.
	Start(info RunInfo)

	// BatchStarted announces one batch of probes.
	BatchStarted(batch, size int, remaining int64)

	// Discovered announces one live site.
	Discovered(hit Hit, remaining int64)

	// Finish shows the final summary.
	Finish(summary Summary)
}

// RunInfo describes the run being started.
type RunInfo struct {
	Target    int64
	BatchSize int
	Timeout   time.Duration
	Handler   string
	Words     int
	Suffixes  []string
}

// Hit is one discovered live site.
type Hit struct {
	URL   string
	Title string
}

// Summary holds the end-of-run counters.
type Summary struct {
	Found           int
	Batches         int
	Probes          int
	Dead            int
	Timeouts        int
	TransportErrors int
	Elapsed         time.Duration
}
