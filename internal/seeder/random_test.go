package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntBetweenStaysInclusive(t *testing.T) {
	r := NewRand(1)

	sawMin, sawMax := false, false
	for i := 0; i < 1000; i++ {
		n := r.IntBetween(3, 7)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 7)
		sawMin = sawMin || n == 3
		sawMax = sawMax || n == 7
	}
	assert.True(t, sawMin, "lower bound never drawn")
	assert.True(t, sawMax, "upper bound never drawn")
}

func TestIntBetweenCollapsesDegenerateRange(t *testing.T) {
	r := NewRand(1)

	assert.Equal(t, 5, r.IntBetween(5, 5))
	assert.Equal(t, 5, r.IntBetween(5, 2))
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewRand(42), NewRand(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntBetween(0, 1000), b.IntBetween(0, 1000))
	}
}

func TestPickOneEmpty(t *testing.T) {
	r := NewRand(1)

	_, err := PickOne(r, []string{})
	assert.ErrorIs(t, err, ErrEmptyCollection)

	v, err := PickOne(r, []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, "only", v)
}

func TestPickSubsetBounds(t *testing.T) {
	r := NewRand(1)
	items := []int{1, 2, 3, 4, 5}

	for i := 0; i < 200; i++ {
		subset := PickSubset(r, items, 1, 3)
		assert.GreaterOrEqual(t, len(subset), 1)
		assert.LessOrEqual(t, len(subset), 3)

		seen := map[int]bool{}
		for _, v := range subset {
			assert.False(t, seen[v], "subset must not repeat elements")
			seen[v] = true
		}
	}
}

func TestPickSubsetCapsAtCollectionSize(t *testing.T) {
	r := NewRand(1)

	subset := PickSubset(r, []int{1, 2}, 5, 10)
	assert.Len(t, subset, 2)
}

func TestDateBetween(t *testing.T) {
	r := NewRand(1)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		d := r.DateBetween(start, end)
		assert.False(t, d.Before(start))
		assert.False(t, d.After(end))
	}
}

func TestDateBetweenInvertedRangeReturnsEnd(t *testing.T) {
	r := NewRand(1)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, end, r.DateBetween(start, end))
}

func TestAlphanumeric(t *testing.T) {
	r := NewRand(1)

	s := r.Alphanumeric(24)
	assert.Len(t, s, 24)
	for _, c := range s {
		ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		assert.True(t, ok, "unexpected character %q", c)
	}
}

func TestHexColor(t *testing.T) {
	r := NewRand(1)

	for i := 0; i < 50; i++ {
		c := r.HexColor()
		require.Len(t, c, 7)
		assert.Equal(t, byte('#'), c[0])
		for _, ch := range c[1:] {
			ok := (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f')
			assert.True(t, ok, "unexpected hex digit %q", ch)
		}
	}
}
