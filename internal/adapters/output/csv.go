// internal/adapters/output/csv.go
package output

import (
	"os"

	"github.com/gocarina/gocsv"

	"randomnet/internal/core/domain"
	"randomnet/internal/platform/errors"
)

// CSVExporter collects discoveries during the run and writes them out as
// one CSV file when the run finishes.
type CSVExporter struct {
	path string
	rows []domain.Discovery
}

// NewCSVExporter creates an exporter that will write to path on Flush.
func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{path: path}
}

func (e *CSVExporter) Name() string { return "csv" }

// Handle buffers one discovery. The file is only written on Flush so a
// crashed run never leaves a half-written export behind.
func (e *CSVExporter) Handle(d domain.Discovery) error {
	e.rows = append(e.rows, d)
	return nil
}

// Flush writes all collected discoveries to the configured path.
func (e *CSVExporter) Flush() error {
	f, err := os.Create(e.path)
	if err != nil {
		return errors.Wrapf(err, "create csv export %s", e.path)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&e.rows, f); err != nil {
		return errors.Wrap(err, "marshal csv export")
	}
	return nil
}
