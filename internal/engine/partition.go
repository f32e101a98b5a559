package engine

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"unicode/utf8"
)

// ErrMalformedDivider is returned when a divider is not strictly increasing
// or has a cut outside (0, n). Dividers from Dividers never trigger it.
var ErrMalformedDivider = errors.New("malformed divider")

// Partition is a letter-count partition: positive part lengths summing to
// the word length.
type Partition []int

// Sum returns the total letter count.
func (p Partition) Sum() int {
	s := 0
	for _, v := range p {
		s += v
	}
	return s
}

// Divider recovers the originating divider from prefix sums.
func (p Partition) Divider() Divider {
	if len(p) <= 1 {
		return Divider{}
	}
	d := make(Divider, 0, len(p)-1)
	acc := 0
	for _, v := range p[:len(p)-1] {
		acc += v
		d = append(d, acc)
	}
	return d
}

// LetterCounts converts a divider of a word of length n into its
// letter-count partition: the consecutive differences of (0, d..., n).
func LetterCounts(d Divider, n int) (Partition, error) {
	if n <= 0 || !d.Valid(n) {
		return nil, fmt.Errorf("%w: %v for length %d", ErrMalformedDivider, []int(d), n)
	}
	p := make(Partition, 0, len(d)+1)
	prev := 0
	for _, c := range d {
		p = append(p, c-prev)
		prev = c
	}
	return append(p, n-prev), nil
}

// mustLetterCounts panics on a malformed divider; that can only happen
// through a defect in divider enumeration.
func mustLetterCounts(d Divider, n int) Partition {
	p, err := LetterCounts(d, n)
	if err != nil {
		panic(err)
	}
	return p
}

// SliceByDivider cuts word at the divider positions.
func SliceByDivider(word []rune, d Divider) Sequence {
	if len(d) == 0 {
		return Sequence{string(word)}
	}
	seq := make(Sequence, 0, len(d)+1)
	prev := 0
	for _, c := range d {
		seq = append(seq, string(word[prev:c]))
		prev = c
	}
	return append(seq, string(word[prev:]))
}

// Buckets maps a rune length to the sorted words of that length.
type Buckets map[int][]string

// NewBuckets groups words by rune length.
func NewBuckets(words map[string]struct{}) Buckets {
	b := make(Buckets)
	for w := range words {
		n := utf8.RuneCountInString(w)
		b[n] = append(b[n], w)
	}
	for _, ws := range b {
		sort.Strings(ws)
	}
	return b
}

// Candidates yields every ordered choice of one word per part of p: the
// Cartesian product of the buckets for each part length, last part varying
// fastest. The yielded Sequence is reused; clone it to keep it.
func (b Buckets) Candidates(p Partition) iter.Seq[Sequence] {
	return func(yield func(Sequence) bool) {
		if len(p) == 0 {
			return
		}
		bins := make([][]string, len(p))
		for i, n := range p {
			bins[i] = b[n]
			if len(bins[i]) == 0 {
				return
			}
		}
		idx := make([]int, len(p))
		seq := make(Sequence, len(p))
		for {
			for i := range bins {
				seq[i] = bins[i][idx[i]]
			}
			if !yield(seq) {
				return
			}
			i := len(idx) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(bins[i]) {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
