package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterCountsExamples(t *testing.T) {
	p, err := LetterCounts(Divider{1, 3, 4}, 6)
	require.NoError(t, err)
	assert.Equal(t, Partition{1, 2, 1, 2}, p)

	p, err = LetterCounts(Divider{2, 5}, 9)
	require.NoError(t, err)
	assert.Equal(t, Partition{2, 3, 4}, p)

	p, err = LetterCounts(Divider{}, 5)
	require.NoError(t, err)
	assert.Equal(t, Partition{5}, p)
}

func TestLetterCountsRoundTrip(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for _, d := range Dividers(n) {
			p, err := LetterCounts(d, n)
			require.NoError(t, err)
			assert.Equal(t, n, p.Sum())
			for _, v := range p {
				assert.Positive(t, v)
			}
			assert.Equal(t, d, p.Divider(), "n=%d", n)
		}
	}
}

func TestLetterCountsMalformed(t *testing.T) {
	for _, d := range []Divider{{0}, {3, 2}, {2, 2}, {5}, {1, 9}} {
		_, err := LetterCounts(d, 5)
		assert.ErrorIs(t, err, ErrMalformedDivider, "divider %v", d)
	}
	_, err := LetterCounts(Divider{}, 0)
	assert.ErrorIs(t, err, ErrMalformedDivider)
}

func TestMustLetterCountsPanics(t *testing.T) {
	assert.Panics(t, func() { mustLetterCounts(Divider{4, 1}, 5) })
}

func TestSliceByDivider(t *testing.T) {
	w := []rune("ABCC")
	assert.Equal(t, Sequence{"ABCC"}, SliceByDivider(w, Divider{}))
	assert.Equal(t, Sequence{"A", "BCC"}, SliceByDivider(w, Divider{1}))
	assert.Equal(t, Sequence{"AB", "C", "C"}, SliceByDivider(w, Divider{2, 3}))
	assert.Equal(t, Sequence{"A", "B", "C", "C"}, SliceByDivider(w, Divider{1, 2, 3}))

	// Cuts count runes, not bytes.
	assert.Equal(t, Sequence{"é", "tê"}, SliceByDivider([]rune("étê"), Divider{1}))
}

func TestBucketsCandidates(t *testing.T) {
	b := NewBuckets(map[string]struct{}{"a": {}, "e": {}, "at": {}, "ea": {}})
	assert.Equal(t, []string{"a", "e"}, b[1])
	assert.Equal(t, []string{"at", "ea"}, b[2])

	var got []Sequence
	for seq := range b.Candidates(Partition{1, 2}) {
		got = append(got, seq.Clone())
	}
	assert.Equal(t, []Sequence{
		{"a", "at"}, {"a", "ea"},
		{"e", "at"}, {"e", "ea"},
	}, got)
}

func TestBucketsCandidatesEmptyBucket(t *testing.T) {
	b := NewBuckets(map[string]struct{}{"a": {}})
	n := 0
	for range b.Candidates(Partition{1, 3}) {
		n++
	}
	assert.Zero(t, n)

	for range b.Candidates(nil) {
		n++
	}
	assert.Zero(t, n)
}

func TestBucketsCandidatesStopEarly(t *testing.T) {
	b := NewBuckets(map[string]struct{}{"a": {}, "b": {}, "c": {}})
	var got []string
	for seq := range b.Candidates(Partition{1, 1}) {
		got = append(got, seq.String())
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a a", "a b"}, got)
	assert.True(t, slices.IsSorted(got))
}
