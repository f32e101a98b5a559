package output

import (
	"sort"

	"anagrams/internal/engine"
)

// Lines joins each sequence with single spaces and sorts the result.
func Lines(seqs []engine.Sequence) []string {
	out := make([]string, 0, len(seqs))
	for _, s := range seqs {
		out = append(out, s.String())
	}
	sort.Strings(out)
	return out
}

// Sort orders seqs in place by their joined text.
func Sort(seqs []engine.Sequence) {
	sort.SliceStable(seqs, func(i, j int) bool { return seqs[i].String() < seqs[j].String() })
}
