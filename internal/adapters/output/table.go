// internal/adapters/output/table.go
package output

import (
	"io"
	"time"

	"github.com/rodaine/table"

	"randomnet/internal/core/domain"
)

// WriteSummary renders the discoveries and run counters as a terminal
// table at the end of a run.
func WriteSummary(w io.Writer, discoveries []domain.Discovery, stats domain.RunStats) {
	tbl := table.New("#", "URL", "Title", "Found At").WithWriter(w)
	for i, d := range discoveries {
		tbl.AddRow(i+1, d.URL, d.Title, d.FoundAt.Format(time.TimeOnly))
	}
	tbl.Print()

	counters := table.New("Batches", "Probes", "Alive", "Dead", "Timeouts", "Transport Errors", "Elapsed").WithWriter(w)
	counters.AddRow(
		stats.Batches,
		stats.Probes,
		stats.Alive,
		stats.Dead,
		stats.Timeouts,
		stats.TransportErrors,
		stats.Elapsed.Round(time.Millisecond),
	)
	counters.Print()
}
