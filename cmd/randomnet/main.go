// cmd/randomnet/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"randomnet/internal/adapters/output"
	"randomnet/internal/classifier"
	"randomnet/internal/core/ports"
	"randomnet/internal/core/usecases"
	"randomnet/internal/generator"
	"randomnet/internal/platform/config"
	"randomnet/internal/platform/logx"
	"randomnet/internal/platform/ui"
	"randomnet/internal/prober"
	"randomnet/internal/wordlist"
)

var (
	// Filled via -ldflags at build time.
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("randomnet %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	logger := logx.New()
	if cfg.UI == "pterm" {
		// Keep log noise out of the pterm output.
		logger = logx.NewSilent()
	}

	logger.Info("randomnet starting",
		"version", version,
		"count", cfg.Count,
		"batch_size", cfg.BatchSize,
		"timeout", cfg.Timeout,
		"handler", cfg.Handler,
	)

	ctx, cancel := rootContextWithSignals()
	defer cancel()

	// Vocabulary: the only load failure that is fatal by design.
	words, err := wordlist.Load(cfg.Wordlist)
	if err != nil {
		logger.Err(err, "phase", "wordlist")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	var cls ports.Classifier
	if !cfg.ClassifierDisabled {
		cls, err = classifier.New(cfg.ExtraSignatures...)
		if err != nil {
			logger.Err(err, "phase", "classifier")
			os.Exit(2)
		}
	}

	gen, err := generator.New(words, cfg.Suffixes, nil)
	if err != nil {
		logger.Err(err, "phase", "generator")
		os.Exit(2)
	}

	probe := prober.New(prober.Config{
		Timeout:      cfg.Timeout,
		UserAgent:    cfg.UserAgent,
		MaxBodyBytes: cfg.MaxBodyBytes,
		RateLimit:    cfg.RateLimit,
	}, cls, logger)

	sink, csvExport := buildSinks(cfg)
	presenter := buildPresenter(cfg, logger)

	orch, err := usecases.NewOrchestrator(usecases.Options{
		Generator: gen,
		Prober:    probe,
		Sink:      sink,
		Presenter: presenter,
		Logger:    logger,
		Target:    int64(cfg.Count),
		BatchSize: cfg.BatchSize,
	})
	if err != nil {
		logger.Err(err, "phase", "wiring")
		os.Exit(2)
	}

	presenter.Start(ui.RunInfo{
		Target:    int64(cfg.Count),
		BatchSize: cfg.BatchSize,
		Timeout:   cfg.Timeout,
		Handler:   cfg.Handler,
		Words:     len(words),
		Suffixes:  cfg.Suffixes,
	})

	discoveries, stats, runErr := orch.Run(ctx)

	presenter.Finish(ui.Summary{
		Found:           len(discoveries),
		Batches:         stats.Batches,
		Probes:          stats.Probes,
		Dead:            stats.Dead,
		Timeouts:        stats.Timeouts,
		TransportErrors: stats.TransportErrors,
		Elapsed:         stats.Elapsed,
	})

	if !cfg.TableDisabled && len(discoveries) > 0 {
		output.WriteSummary(os.Stdout, discoveries, stats)
	}

	if csvExport != nil {
		if err := csvExport.Flush(); err != nil {
			logger.Err(err, "phase", "csv-export")
			os.Exit(1)
		}
		logger.Info("csv export written", "path", cfg.CSVPath, "rows", len(discoveries))
	}

	if runErr != nil {
		// Canceled or timed out before reaching the target; partial
		// results were already reported.
		logger.Warn("run interrupted", "error", runErr.Error(), "found", len(discoveries))
		os.Exit(1)
	}
}

// buildSinks assembles the handler sink plus the optional CSV exporter.
func buildSinks(cfg config.Config) (ports.Sink, *output.CSVExporter) {
	var sinks output.MultiSink

	switch cfg.Handler {
	case config.HandlerBrowser:
		sinks = append(sinks, output.NewBrowserSink())
	default:
		sinks = append(sinks, output.NewPrintSink(os.Stdout))
	}

	var csvExport *output.CSVExporter
	if cfg.CSVPath != "" {
		csvExport = output.NewCSVExporter(cfg.CSVPath)
		sinks = append(sinks, csvExport)
	}

	if len(sinks) == 1 {
		return sinks[0], csvExport
	}
	return sinks, csvExport
}

func buildPresenter(cfg config.Config, logger logx.Logger) ui.Presenter {
	switch cfg.UI {
	case "raw":
		return ui.NewRawPresenter(logger)
	case "none":
		return ui.NewNoopPresenter()
	default:
		return ui.NewPTermPresenter()
	}
}

// rootContextWithSignals returns a context canceled by SIGINT or SIGTERM.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		close(ch)
		baseCancel()
	}
	return base, cleanup
}
