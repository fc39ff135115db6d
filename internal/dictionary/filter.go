// Package dictionary provides word filtering helpers.
package dictionary

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Filter keeps the words accepted by fn, preserving order.
func Filter(words []string, fn FilterFunc) []string {
	if fn == nil {
		return words
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if fn(w) {
			out = append(out, w)
		}
	}
	return out
}

// ASCIILower accepts words made only of lowercase ASCII letters. System
// dictionaries mix in proper nouns and possessives; this strips them.
func ASCIILower(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
