// internal/generator/generator_test.go
package generator

import (
	"math/rand"
	"regexp"
	"testing"

	"randomnet/internal/platform/errors"
)

func TestNextMatchesCandidateShape(t *testing.T) {
	words := []string{"foo", "bar", "baz"}
	suffixes := []string{"com", "net", "co.uk"}

	gen, err := New(words, suffixes, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1 to 3 vocabulary words concatenated, then one configured suffix.
	shape := regexp.MustCompile(`^http://(?:foo|bar|baz){1,3}\.(?:com|net|co\.uk)$`)

	const draws = 200
	for i := 0; i < draws; i++ {
		c := gen.Next()
		if !shape.MatchString(c) {
			t.Fatalf("draw %d: candidate %q does not match the expected shape", i, c)
		}
	}
}

func TestNextCoversWordCounts(t *testing.T) {
	// A single-letter vocabulary makes the word count directly
	// observable from the host length.
	gen, err := New([]string{"a"}, []string{"com"}, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		host := gen.Next()
		n := len(host) - len("http://") - len(".com")
		if n < 1 || n > maxWordsPerCandidate {
			t.Fatalf("candidate %q uses %d words, expected 1..%d", host, n, maxWordsPerCandidate)
		}
		seen[n] = true
	}

	for k := 1; k <= maxWordsPerCandidate; k++ {
		if !seen[k] {
			t.Errorf("word count %d never drawn in 200 candidates", k)
		}
	}
}

func TestSeededSequencesAreReproducible(t *testing.T) {
	words := []string{"red", "green", "blue"}
	suffixes := []string{"org", "net"}

	a, _ := New(words, suffixes, rand.New(rand.NewSource(42)))
	b, _ := New(words, suffixes, rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		if got, want := a.Next(), b.Next(); got != want {
			t.Fatalf("draw %d: sequences diverged, %q vs %q", i, got, want)
		}
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		suffixes []string
		check    func(error) bool
	}{
		{"empty vocabulary", nil, []string{"com"}, errors.IsEmptyWordlist},
		{"empty suffixes", []string{"foo"}, nil, errors.IsInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.words, tt.suffixes, nil); !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
