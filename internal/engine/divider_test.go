package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func TestDividersCountAndValidity(t *testing.T) {
	for n := 1; n <= 10; n++ {
		ds := Dividers(n)
		require.Len(t, ds, DividerCount(n), "n=%d", n)

		seen := make(map[string]struct{}, len(ds))
		for _, d := range ds {
			assert.True(t, d.Valid(n), "n=%d divider %v", n, d)
			key := fmt.Sprint([]int(d))
			_, dup := seen[key]
			assert.False(t, dup, "n=%d duplicate divider %v", n, d)
			seen[key] = struct{}{}
		}
	}
}

func TestDividersPerK(t *testing.T) {
	const n = 7
	perK := map[int]int{}
	for _, d := range Dividers(n) {
		perK[d.K()]++
	}
	for k := 0; k < n; k++ {
		assert.Equal(t, combin.Binomial(n-1, k), perK[k], "k=%d", k)
	}
}

func TestDividersOrder(t *testing.T) {
	got := Dividers(4)
	want := []Divider{
		{},
		{1}, {2}, {3},
		{1, 2}, {1, 3}, {2, 3},
		{1, 2, 3},
	}
	assert.Equal(t, want, got)
}

func TestDividersDegenerate(t *testing.T) {
	assert.Empty(t, Dividers(0))
	assert.Empty(t, Dividers(-3))
	assert.Equal(t, 0, DividerCount(0))

	one := Dividers(1)
	require.Len(t, one, 1)
	assert.Empty(t, one[0])
}

func TestDividerValid(t *testing.T) {
	assert.True(t, Divider{}.Valid(1))
	assert.True(t, Divider{1, 3}.Valid(4))
	assert.False(t, Divider{0, 2}.Valid(4))
	assert.False(t, Divider{2, 2}.Valid(4))
	assert.False(t, Divider{3, 1}.Valid(4))
	assert.False(t, Divider{4}.Valid(4))
}
