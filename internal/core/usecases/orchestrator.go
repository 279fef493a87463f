// internal/core/usecases/orchestrator.go
package usecases

import (
	"context"
	"sync"
	"time"

	"randomnet/internal/core/domain"
	"randomnet/internal/core/ports"
	"randomnet/internal/htmltext"
	"randomnet/internal/platform/errors"
	"randomnet/internal/platform/logx"
	"randomnet/internal/platform/ui"
)

// Orchestrator drives the discovery loop: it draws fixed-size batches of
// candidates from the generator, probes them concurrently, reports every
// live hit to the sink and stops once the success target is reached.
//
// The batch is the synchronization barrier: all probes of a batch resolve
// before the next batch is drawn, and the sink only ever runs on the
// orchestrator goroutine.
type Orchestrator struct {
	gen       ports.Generator
	prober    ports.Prober
	sink      ports.Sink
	presenter ui.Presenter
	logger    logx.Logger

	target    int64
	batchSize int
}

// Options configures an Orchestrator.
type Options struct {
	Generator ports.Generator
	Prober    ports.Prober
	Sink      ports.Sink
	Presenter ui.Presenter // optional, defaults to noop
	Logger    logx.Logger  // optional

	// Target is the number of live sites to find. Required, > 0.
	Target int64

	// BatchSize is the number of candidates probed concurrently per
	// iteration. It bounds outstanding sockets and should generally be
	// larger than Target so few batches are needed.
	BatchSize int
}

// NewOrchestrator wires an orchestrator from options.
func NewOrchestrator(opts Options) (*Orchestrator, error) {
	if opts.Generator == nil || opts.Prober == nil || opts.Sink == nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "generator, prober and sink are required")
	}
	if opts.Target < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "target must be positive, got %d", opts.Target)
	}
	if opts.BatchSize < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "batch size must be positive, got %d", opts.BatchSize)
	}
	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	return &Orchestrator{
		gen:       opts.Generator,
		prober:    opts.Prober,
		sink:      opts.Sink,
		presenter: opts.Presenter,
		logger:    opts.Logger.With("component", "orchestrator"),
		target:    opts.Target,
		batchSize: opts.BatchSize,
	}, nil
}

// Run executes batches until the target is reached or ctx is canceled.
// It returns every discovery reported to the sink, in report order, plus
// run statistics. The only error it can return is the context's.
func (o *Orchestrator) Run(ctx context.Context) ([]domain.Discovery, domain.RunStats, error) {
	counter := NewCounter(o.target)
	var (
		stats       domain.RunStats
		discoveries []domain.Discovery
	)
	start := time.Now()

	for {
		if err := ctx.Err(); err != nil {
			stats.Elapsed = time.Since(start)
			return discoveries, stats, err
		}

		stats.Batches++
		o.presenter.BatchStarted(stats.Batches, o.batchSize, counter.Remaining())
		o.logger.Debug("batch started", "batch", stats.Batches, "size", o.batchSize, "remaining", counter.Remaining())

		complete := o.runBatch(ctx, counter, &stats, &discoveries)
		if complete {
			stats.Elapsed = time.Since(start)
			o.logger.Info("target reached",
				"found", len(discoveries),
				"batches", stats.Batches,
				"probes", stats.Probes,
			)
			return discoveries, stats, nil
		}
	}
}

// runBatch probes one batch to completion and reports whether the counter
// completed. Every alive outcome of the batch is reported, even those that
// land after completion was observed, so the sink can be invoked at most
// batchSize-1 times beyond the target.
func (o *Orchestrator) runBatch(ctx context.Context, counter *Counter, stats *domain.RunStats, discoveries *[]domain.Discovery) bool {
	outcomes := make(chan domain.ProbeOutcome, o.batchSize)

	var wg sync.WaitGroup
	for i := 0; i < o.batchSize; i++ {
		candidate := o.gen.Next()
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes <- o.prober.Probe(ctx, candidate)
		}()
	}
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	complete := false
	for out := range outcomes {
		stats.Observe(out)
		if !out.Alive() {
			continue
		}

		d := domain.Discovery{
			URL:     out.Candidate,
			Title:   htmltext.Title(out.Body),
			FoundAt: time.Now(),
		}
		*discoveries = append(*discoveries, d)

		if err := o.sink.Handle(d); err != nil {
			o.logger.Warn("sink failed", "sink", o.sink.Name(), "url", d.URL, "error", err.Error())
		}

		remaining, done := counter.Decrement()
		o.presenter.Discovered(ui.Hit{URL: d.URL, Title: d.Title}, remaining)
		if done {
			complete = true
		}
	}
	return complete
}
