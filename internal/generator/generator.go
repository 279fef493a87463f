// Package generator synthesizes random candidate URLs from a word
// vocabulary and a set of domain suffixes.
package generator

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"randomnet/internal/platform/errors"
)

// maxWordsPerCandidate is the upper bound of words concatenated into one
// candidate host name.
const maxWordsPerCandidate = 3

// Generator produces an unbounded, lazy stream of candidates. Each call
// advances the randomness source, so the sequence is not restartable and
// duplicates are possible.
type Generator struct {
	words    []string
	suffixes []string

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// New creates a generator over the given vocabulary and suffix set. When
// rng is nil a time-seeded source is used; tests inject a seeded one.
func New(words, suffixes []string, rng *rand.Rand) (*Generator, error) {
	if len(words) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyWordlist, "generator")
	}
	if len(suffixes) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "generator needs at least one suffix")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		words:    words,
		suffixes: suffixes,
		rng:      rng,
	}, nil
}

// Next returns one candidate URL of the form
// http://<1-3 concatenated words>.<suffix>. It never blocks and never
// exhausts.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.WriteString("http://")

	k := g.rng.Intn(maxWordsPerCandidate) + 1
	for i := 0; i < k; i++ {
		b.WriteString(g.words[g.rng.Intn(len(g.words))])
	}

	b.WriteByte('.')
	b.WriteString(g.suffixes[g.rng.Intn(len(g.suffixes))])
	return b.String()
}
