// Package wordlist loads the candidate vocabulary from a word list file.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"randomnet/internal/platform/errors"
)

// Load reads one word per line from path, trimming, lowercasing and
// dropping duplicates while preserving first-seen order. An unreadable or
// empty file is fatal to the engine, so both are returned as errors.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open wordlist %s", path)
	}
	defer f.Close()

	words, err := FromReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "wordlist %s", path)
	}
	return words, nil
}

// FromReader parses a word list from r. Same normalization as Load.
func FromReader(r io.Reader) ([]string, error) {
	seen := mapset.NewThreadUnsafeSet[string]()
	var words []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.ToLower(strings.TrimSpace(sc.Text()))
		if word == "" {
			continue
		}
		if seen.Add(word) {
			words = append(words, word)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read wordlist")
	}
	if len(words) == 0 {
		return nil, errors.ErrEmptyWordlist
	}
	return words, nil
}
