// internal/adapters/output/print.go
package output

import (
	"fmt"
	"io"

	"randomnet/internal/core/domain"
)

// PrintSink writes each discovered URL to w, one per line. It is only
// ever invoked from the orchestrator goroutine, so it needs no locking.
type PrintSink struct {
	w io.Writer
}

// NewPrintSink creates a sink writing to w (usually os.Stdout).
func NewPrintSink(w io.Writer) *PrintSink {
	return &PrintSink{w: w}
}

func (s *PrintSink) Name() string { return "print" }

func (s *PrintSink) Handle(d domain.Discovery) error {
	_, err := fmt.Fprintln(s.w, d.URL)
	return err
}
