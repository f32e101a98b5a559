package engine

import (
	"slices"
	"strings"
)

// Sequence is an ordered list of words (a word-partition).
type Sequence []string

// String joins the words with single spaces.
func (s Sequence) String() string { return strings.Join(s, " ") }

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence { return slices.Clone(s) }

// ComparableForm returns the runes of all words of seq in code-point order.
// Two sequences have the same comparable form iff they use the same letters.
func ComparableForm(seq Sequence) string {
	n := 0
	for _, w := range seq {
		n += len(w)
	}
	rs := make([]rune, 0, n)
	for _, w := range seq {
		rs = append(rs, []rune(w)...)
	}
	slices.Sort(rs)
	return string(rs)
}

// Form is ComparableForm of a single word.
func Form(word string) string { return ComparableForm(Sequence{word}) }
