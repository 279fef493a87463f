// internal/platform/ui/raw_presenter.go
package ui

import (
	"randomnet/internal/platform/logx"
)

// RawPresenter renders progress as plain log lines, for pipelines and
// terminals where pterm output is unwanted.
type RawPresenter struct {
	logger logx.Logger
}

func NewRawPresenter(logger logx.Logger) *RawPresenter {
	if logger == nil {
		logger = logx.New()
	}
	return &RawPresenter{logger: logger.With("component", "ui")}
}

func (p *RawPresenter) Start(info RunInfo) {
	p.logger.Info("run started",
		"target", info.Target,
		"batch_size", info.BatchSize,
		"timeout", info.Timeout,
		"handler", info.Handler,
		"words", info.Words,
	)
}

func (p *RawPresenter) BatchStarted(batch, size int, remaining int64) {
	p.logger.Info("batch started", "batch", batch, "size", size, "remaining", remaining)
}

func (p *RawPresenter) Discovered(hit Hit, remaining int64) {
	p.logger.Info("live site found", "url", hit.URL, "title", hit.Title, "remaining", remaining)
}

func (p *RawPresenter) Finish(s Summary) {
	p.logger.Info("run finished",
		"found", s.Found,
		"batches", s.Batches,
		"probes", s.Probes,
		"dead", s.Dead,
		"timeouts", s.Timeouts,
		"transport_errors", s.TransportErrors,
		"elapsed_ms", s.Elapsed.Milliseconds(),
	)
}
