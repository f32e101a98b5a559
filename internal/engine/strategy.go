package engine

import (
	"iter"

	"gonum.org/v1/gonum/stat/combin"
)

// Permutations yields all len(word)! orderings of word's runes. Orderings
// that coincide because of repeated letters are yielded once per
// arrangement.
func Permutations(word []rune) iter.Seq[string] {
	return func(yield func(string) bool) {
		n := len(word)
		if n == 0 {
			return
		}
		gen := combin.NewPermutationGenerator(n, n)
		idx := make([]int, n)
		buf := make([]rune, n)
		for gen.Next() {
			gen.Permutation(idx)
			for i, j := range idx {
				buf[i] = word[j]
			}
			if !yield(string(buf)) {
				return
			}
		}
	}
}

// WordCentric checks permutations of the word against the reduced
// dictionary. A value is shared read-only by all workers.
type WordCentric struct {
	Dividers []Divider
	Words    map[string]struct{}
}

// Match slices perm by every divider and keeps the sequences made only of
// known words. Slicing a permutation of the word preserves its letters, so
// no comparable-form check is needed.
func (s *WordCentric) Match(perm string) []Sequence {
	rs := []rune(perm)
	var out []Sequence
	for _, d := range s.Dividers {
		seq := SliceByDivider(rs, d)
		if s.allKnown(seq) {
			out = append(out, seq)
		}
	}
	return out
}

func (s *WordCentric) allKnown(seq Sequence) bool {
	for _, w := range seq {
		if _, ok := s.Words[w]; !ok {
			return false
		}
	}
	return true
}

// DictionaryCentric assembles candidates from the length-bucketed reduced
// dictionary and keeps those using exactly the word's letters. A value is
// shared read-only by all workers.
type DictionaryCentric struct {
	Buckets Buckets
	Length  int
	Form    string
}

// NewDictionaryCentric precomputes the word's comparable form and buckets
// the reduced dictionary by length.
func NewDictionaryCentric(word []rune, words map[string]struct{}) *DictionaryCentric {
	return &DictionaryCentric{
		Buckets: NewBuckets(words),
		Length:  len(word),
		Form:    Form(string(word)),
	}
}

// Match tests every candidate of d's letter-count partition.
func (s *DictionaryCentric) Match(d Divider) []Sequence {
	p := mustLetterCounts(d, s.Length)
	var out []Sequence
	for seq := range s.Buckets.Candidates(p) {
		if ComparableForm(seq) == s.Form {
			out = append(out, seq.Clone())
		}
	}
	return out
}
