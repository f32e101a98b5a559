// Package best picks representative anagrams from a full result: the one
// with the most words and one made of exactly two words.
package best

import (
	"anagrams/internal/engine"
	"anagrams/internal/output"
)

// Pick returns the first anagram with the most words and the first
// two-word anagram, both in sorted order. With no two-word anagram both are
// empty, even if longer anagrams exist.
func Pick(seqs []engine.Sequence) (most, two string) {
	sorted := make([]engine.Sequence, len(seqs))
	copy(sorted, seqs)
	output.Sort(sorted)

	var pair engine.Sequence
	for _, s := range sorted {
		if len(s) == 2 {
			pair = s
			break
		}
	}
	if pair == nil {
		return "", ""
	}

	longest := sorted[0]
	for _, s := range sorted[1:] {
		if len(s) > len(longest) {
			longest = s
		}
	}
	return longest.String(), pair.String()
}
