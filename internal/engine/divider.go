package engine

import "gonum.org/v1/gonum/stat/combin"

// Divider is a strictly increasing set of cut positions inside a word of
// length n; every entry lies in (0, n). The empty Divider keeps the word whole.
type Divider []int

// K reports the number of cuts.
func (d Divider) K() int { return len(d) }

// Valid reports whether d is a divider of a word of length n.
func (d Divider) Valid(n int) bool {
	prev := 0
	for _, c := range d {
		if c <= prev || c >= n {
			return false
		}
		prev = c
	}
	return true
}

// DividerCount is the number of dividers of a word of length n: 2^(n-1).
func DividerCount(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << (n - 1)
}

// Dividers returns every divider of a word of length n, ordered by number of
// cuts and then lexicographically. n <= 0 yields none.
func Dividers(n int) []Divider {
	if n <= 0 {
		return nil
	}
	out := make([]Divider, 0, DividerCount(n))
	for k := 0; k < n; k++ {
		// k-combinations of {0..n-2}, shifted into {1..n-1}.
		gen := combin.NewCombinationGenerator(n-1, k)
		for gen.Next() {
			c := gen.Combination(nil)
			for i := range c {
				c[i]++
			}
			out = append(out, Divider(c))
		}
	}
	return out
}
