// Package wordlist loads stop-word sets from newline-delimited files.
package wordlist

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"
)

//go:embed stopwords.txt
var defaultStopwords string

// Set is a read-only membership set of normalized lowercase tokens.
type Set map[string]struct{}

// Contains reports whether the token is in the set.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Load reads one token per line from the provided file path. Tokens are
// lower-cased and trimmed; blank lines are skipped. An empty file yields an
// empty set, which disables stop-word filtering.
func Load(path string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		// Best-effort close for a read-only word list.
		_ = file.Close()
	}()
	return parse(file)
}

// Default returns the embedded stop-word list.
func Default() Set {
	set, err := parse(strings.NewReader(defaultStopwords))
	if err != nil {
		return Set{}
	}
	return set
}

func parse(r io.Reader) (Set, error) {
	set := make(Set)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		set[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}
