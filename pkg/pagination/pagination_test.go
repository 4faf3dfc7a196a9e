package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClamps(t *testing.T) {
	p := Normalize(0, 0)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, DefaultPageSize, p.Size)

	p = Normalize(-3, 500)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, MaxPageSize, p.Size)

	p = Normalize(4, 25)
	assert.Equal(t, 4, p.Number)
	assert.Equal(t, 25, p.Size)
}

func TestSliceWindows(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	first := Slice(items, Normalize(1, 10))
	assert.Len(t, first, 10)
	assert.Equal(t, 0, first[0])
	assert.Equal(t, 9, first[9])

	second := Slice(items, Normalize(2, 10))
	assert.Len(t, second, 10)
	assert.Equal(t, 10, second[0])

	last := Slice(items, Normalize(3, 10))
	assert.Len(t, last, 3)
	assert.Equal(t, 22, last[2])

	past := Slice(items, Normalize(9, 10))
	assert.Empty(t, past)
}

func TestPrevNextFlags(t *testing.T) {
	total := 23

	p := Normalize(1, 10)
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext(total))

	p = Normalize(2, 10)
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext(total))

	p = Normalize(3, 10)
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext(total))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(23, 10))
}
