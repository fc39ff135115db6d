// Package dictionary loads candidate words from line-oriented files.
package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// DefaultPath is the conventional system dictionary location.
const DefaultPath = "/usr/share/dict/words"

// Load reads one word per line from the provided file path. Blank lines
// and surrounding whitespace are dropped; everything else is kept as-is.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dictionary.
			_ = cerr
		}
	}()
	return Read(file)
}

// Read reads one word per line from r. An empty dictionary is not an
// error; solving over it simply yields zero answers.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Fold lowercases every word, returning a new slice. Used when the
// caller asked for case-insensitive matching; the solver itself always
// compares literally.
func Fold(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
