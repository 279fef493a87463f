// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"sync"

	"randomnet/internal/core/domain"
)

// cycleGenerator yields a fixed candidate list, cycling forever.
type cycleGenerator struct {
	mu         sync.Mutex
	candidates []string
	next       int
}

func newCycleGenerator(candidates ...string) *cycleGenerator {
	return &cycleGenerator{candidates: candidates}
}

func (g *cycleGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := g.candidates[g.next%len(g.candidates)]
	g.next++
	return c
}

// mapProber resolves candidates from a fixed status map and counts how
// often each candidate was probed.
type mapProber struct {
	mu     sync.Mutex
	alive  map[string]bool
	calls  map[string]int
	onCall func(total int) // optional hook, runs with the probe
}

func newMapProber(alive map[string]bool) *mapProber {
	return &mapProber{
		alive: alive,
		calls: make(map[string]int),
	}
}

func (p *mapProber) Probe(_ context.Context, candidate string) domain.ProbeOutcome {
	p.mu.Lock()
	p.calls[candidate]++
	total := 0
	for _, n := range p.calls {
		total += n
	}
	hook := p.onCall
	p.mu.Unlock()

	if hook != nil {
		hook(total)
	}

	status := domain.StatusDead
	if p.alive[candidate] {
		status = domain.StatusAlive
	}
	return domain.ProbeOutcome{
		Candidate: candidate,
		Status:    status,
		Body:      "<html><title>ok</title>content</html>",
	}
}

func (p *mapProber) callCount(candidate string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[candidate]
}

// collectSink records every discovery. Only invoked from the orchestrator
// goroutine, no locking needed.
type collectSink struct {
	urls []string
	err  error // returned from every Handle when set
}

func (s *collectSink) Name() string { return "collect" }

func (s *collectSink) Handle(d domain.Discovery) error {
	s.urls = append(s.urls, d.URL)
	return s.err
}
