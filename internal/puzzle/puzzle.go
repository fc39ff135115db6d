// Package puzzle draws random puzzles from a dictionary.
package puzzle

import (
	"fmt"
	"math/rand"
	"time"
)

// Puzzle is a required letter plus the remaining allowed letters.
type Puzzle struct {
	Required rune
	Extra    string
	Source   string
}

// Generator draws puzzles from candidate words.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Draw picks a word with exactly letters distinct characters and turns
// it into a puzzle: one of its letters becomes the required letter, the
// rest become the extras. The source word is by construction a pangram
// of its own puzzle.
func (g *Generator) Draw(words []string, letters int) (Puzzle, error) {
	if letters < 2 {
		return Puzzle{}, fmt.Errorf("puzzle needs at least 2 letters, got %d", letters)
	}
	candidates := make([]string, 0, len(words))
	for _, w := range words {
		if len(distinctRunes(w)) == letters {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return Puzzle{}, fmt.Errorf("no word with %d distinct letters in dictionary", letters)
	}

	source := candidates[g.rnd.Intn(len(candidates))]
	distinct := distinctRunes(source)
	requiredIdx := g.rnd.Intn(len(distinct))

	extra := make([]rune, 0, len(distinct)-1)
	for i, r := range distinct {
		if i == requiredIdx {
			continue
		}
		extra = append(extra, r)
	}
	return Puzzle{
		Required: distinct[requiredIdx],
		Extra:    string(extra),
		Source:   source,
	}, nil
}

// distinctRunes returns the distinct characters of w in first-seen order.
func distinctRunes(w string) []rune {
	var out []rune
	for _, r := range w {
		seen := false
		for _, x := range out {
			if x == r {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, r)
		}
	}
	return out
}
