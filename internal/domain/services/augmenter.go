package services

import (
	"iter"
	"strconv"
)

// Augment yields base with each special character appended and then
// prepended, in the order of specials. The second value reports whether
// accept approves the candidate; a nil accept approves everything.
func Augment(base string, specials []string, accept func(string) bool) iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		for _, char := range specials {
			suffixed := base + char
			if !yield(suffixed, accept == nil || accept(suffixed)) {
				return
			}
			prefixed := char + base
			if !yield(prefixed, accept == nil || accept(prefixed)) {
				return
			}
		}
	}
}

// RelationNumberBases formats relation numbers as the decimal strings
// that get augmented. No leetspeak or year forms apply to them.
func RelationNumberBases(numbers []int) []string {
	bases := make([]string, len(numbers))
	for i, n := range numbers {
		bases[i] = strconv.Itoa(n)
	}
	return bases
}
