package engine

import "unicode/utf8"

// letterCounts is a rune multiset.
type letterCounts map[rune]int

func countLetters(rs []rune) letterCounts {
	m := make(letterCounts, len(rs))
	for _, r := range rs {
		m[r]++
	}
	return m
}

// contains reports whether w's letters fit inside m, using scratch to count.
func (m letterCounts) contains(w string, scratch letterCounts) bool {
	clear(scratch)
	for _, r := range w {
		scratch[r]++
		if scratch[r] > m[r] {
			return false
		}
	}
	return true
}

// Reduce returns the dictionary entries that can appear inside an anagram of
// word: entries of 1 to len(word)-1 runes drawn from word's letter multiset.
//
// Entries as long as the word itself are never kept, so the whole-word
// partition has no candidates. Entries that are not valid UTF-8 are dropped:
// no slice of the word can spell them.
func Reduce(word []rune, words []string) map[string]struct{} {
	out := make(map[string]struct{})
	n := len(word)
	if n < 2 {
		return out
	}
	have := countLetters(word)
	scratch := make(letterCounts, len(have))
	for _, w := range words {
		if _, dup := out[w]; dup || !utf8.ValidString(w) {
			continue
		}
		l := 0
		for range w {
			l++
			if l >= n {
				break
			}
		}
		if l == 0 || l >= n {
			continue
		}
		if have.contains(w, scratch) {
			out[w] = struct{}{}
		}
	}
	return out
}
