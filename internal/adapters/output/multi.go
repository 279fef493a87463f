// internal/adapters/output/multi.go
package output

import (
	"strings"

	"randomnet/internal/core/domain"
	"randomnet/internal/core/ports"
	"randomnet/internal/platform/errors"
)

// MultiSink fans each discovery out to several sinks. All sinks are
// invoked even when an earlier one fails; failures are joined.
type MultiSink []ports.Sink

func (m MultiSink) Name() string {
	names := make([]string, len(m))
	for i, s := range m {
		names[i] = s.Name()
	}
	return strings.Join(names, "+")
}

func (m MultiSink) Handle(d domain.Discovery) error {
	var errs []error
	for _, s := range m {
		if err := s.Handle(d); err != nil {
			errs = append(errs, errors.Wrap(err, s.Name()))
		}
	}
	return errors.Join(errs...)
}
