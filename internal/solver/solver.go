// Package solver validates and scores spelling-bee answers.
package solver

import (
	"strings"
	"unicode/utf8"
)

const (
	minAnswerLen = 4
	pangramBonus = 7
)

// Answer is an accepted word together with its score and pangram flag.
type Answer struct {
	Word    string
	Score   int
	Pangram bool
}

// IsValid reports whether word is a legal answer for the puzzle. A word
// is legal when it has at least four characters, contains required at
// least once, and every character is required or appears in extra.
// Comparison is literal; callers fold case beforehand if they want a
// case-insensitive match.
func IsValid(word string, required rune, extra string) bool {
	if utf8.RuneCountInString(word) < minAnswerLen {
		return false
	}
	if !strings.ContainsRune(word, required) {
		return false
	}
	for _, r := range word {
		if r != required && !strings.ContainsRune(extra, r) {
			return false
		}
	}
	return true
}

// Score computes the point value of an already-valid word. Four-letter
// words score one point, longer words score their character length, and
// a pangram (a word using every allowed letter at least once) earns a
// fixed bonus on top. Score does not re-validate its input.
func Score(word string, required rune, extra string) Answer {
	allowed := allowedLetters(required, extra)
	used := 0
	for _, r := range allowed {
		if strings.ContainsRune(word, r) {
			used++
		}
	}
	pangram := used == len(allowed)

	length := utf8.RuneCountInString(word)
	score := 1
	if length > minAnswerLen {
		score = length
	}
	if pangram {
		score += pangramBonus
	}
	return Answer{Word: word, Score: score, Pangram: pangram}
}

// FindAll applies IsValid to every candidate and scores the words that
// pass, preserving their relative input order. Invalid words are dropped
// silently; an empty input yields an empty result.
func FindAll(words []string, required rune, extra string) []Answer {
	var answers []Answer
	for _, w := range words {
		if IsValid(w, required, extra) {
			answers = append(answers, Score(w, required, extra))
		}
	}
	return answers
}

// allowedLetters returns the distinct allowed letters: required plus the
// de-duplicated characters of extra. Duplicates in extra must not inflate
// the pangram denominator.
func allowedLetters(required rune, extra string) []rune {
	letters := []rune{required}
	for _, r := range extra {
		if r == required || containsRune(letters, r) {
			continue
		}
		letters = append(letters, r)
	}
	return letters
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}
