// Package prober performs single bounded-time liveness checks of
// candidate URLs. Every failure mode is folded into a ProbeOutcome; a
// probe is never retried and never surfaces an error to its caller.
package prober

import (
	"context"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"randomnet/internal/core/domain"
	"randomnet/internal/core/ports"
	"randomnet/internal/htmltext"
	"randomnet/internal/platform/errors"
	"randomnet/internal/platform/logx"
	"randomnet/internal/platform/rate"
)

// DefaultUserAgent is a common desktop browser user agent. Some parked
// hosts serve different content to unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 6.1; WOW64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/35.0.1916.153 Safari/537.36"

// Config holds the probe settings.
type Config struct {
	// Timeout bounds one whole probe: connect, response and body read.
	// Default: 5 seconds.
	Timeout time.Duration

	// UserAgent is sent with every request. Default: DefaultUserAgent.
	UserAgent string

	// MaxBodyBytes caps how much of a response body is read for
	// classification. Default: 2 MiB.
	MaxBodyBytes int64

	// RateLimit is the maximum probes per second, 0 means unlimited.
	RateLimit float64

	// RateBurst is the rate limiter burst size. Default: 1.
	RateBurst int
}

// DefaultConfig returns the default probe settings.
func DefaultConfig() Config {
	return Config{
		Timeout:      5 * time.Second,
		UserAgent:    DefaultUserAgent,
		MaxBodyBytes: 2 << 20,
		RateLimit:    0,
		RateBurst:    1,
	}
}

// Prober issues GET probes against candidates. Candidates that are in
// flight simultaneously share one fetch; each caller still gets its own
// outcome.
type Prober struct {
	client     *http.Client
	cfg        Config
	classifier ports.Classifier // nil means status-only classification
	limiter    *rate.Limiter
	logger     logx.Logger
	group      singleflight.Group
}

// New creates a Prober. classifier may be nil, in which case a 200 status
// alone marks a candidate alive and no body is read.
func New(cfg Config, classifier ports.Classifier, logger logx.Logger) *Prober {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 2 << 20
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 1
	}
	if logger == nil {
		logger = logx.New()
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.New(cfg.RateLimit, cfg.RateBurst)
	}

	client := &http.Client{
		// The per-probe context carries the deadline; candidates are
		// probed once, so connection reuse buys nothing.
		Transport: &http.Transport{
			DisableKeepAlives:   true,
			MaxIdleConns:        0,
			TLSHandshakeTimeout: cfg.Timeout,
		},
	}

	return &Prober{
		client:     client,
		cfg:        cfg,
		classifier: classifier,
		limiter:    limiter,
		logger:     logger.With("component", "prober"),
	}
}

// Probe checks one candidate and always returns a populated outcome.
func (p *Prober) Probe(ctx context.Context, candidate string) domain.ProbeOutcome {
	start := time.Now()

	v, _, shared := p.group.Do(candidate, func() (any, error) {
		return p.fetch(ctx, candidate), nil
	})
	out := v.(domain.ProbeOutcome)
	out.Duration = time.Since(start)

	p.logger.Debug("probe finished",
		"candidate", candidate,
		"status", out.Status.String(),
		"duration_ms", out.Duration.Milliseconds(),
		"shared", shared,
	)
	return out
}

func (p *Prober) fetch(ctx context.Context, candidate string) domain.ProbeOutcome {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return p.outcomeFromError(candidate, err)
		}
	}

	pctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(pctx, http.MethodGet, candidate, nil)
	if err != nil {
		return domain.ProbeOutcome{Candidate: candidate, Status: domain.StatusTransportError}
	}
	req.Header.Set("User-Agent", p.cfg.UserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return p.outcomeFromError(candidate, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ProbeOutcome{Candidate: candidate, Status: domain.StatusDead}
	}

	if p.classifier == nil {
		// Status-only mode: 200 is enough, skip the body read.
		return domain.ProbeOutcome{Candidate: candidate, Status: domain.StatusAlive}
	}

	body, err := htmltext.Decode(resp.Body, resp.Header.Get("Content-Type"), p.cfg.MaxBodyBytes)
	if err != nil {
		return p.outcomeFromError(candidate, err)
	}

	if !p.classifier.Genuine(body) {
		return domain.ProbeOutcome{Candidate: candidate, Status: domain.StatusDead}
	}
	return domain.ProbeOutcome{Candidate: candidate, Status: domain.StatusAlive, Body: body}
}

// outcomeFromError maps a transport-level failure to Timeout or
// TransportError. These are data, never errors, to everything above.
func (p *Prober) outcomeFromError(candidate string, err error) domain.ProbeOutcome {
	status := domain.StatusTransportError

	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		status = domain.StatusTimeout
	case errors.As(err, &nerr) && nerr.Timeout():
		status = domain.StatusTimeout
	}

	return domain.ProbeOutcome{Candidate: candidate, Status: status}
}
