package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPrefix(t *testing.T) {
	items := seq(10)

	t.Run("first page", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2}, Prefix(items, 1, 3))
	})

	t.Run("cumulative growth", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, Prefix(items, 2, 3))
	})

	t.Run("caps at length", func(t *testing.T) {
		assert.Len(t, Prefix(items, 7, 3), 10)
	})

	t.Run("page below one is first page", func(t *testing.T) {
		assert.Equal(t, Prefix(items, 1, 4), Prefix(items, 0, 4))
	})

	t.Run("zero size is empty", func(t *testing.T) {
		assert.Empty(t, Prefix(items, 3, 0))
	})

	t.Run("each page extends the previous", func(t *testing.T) {
		for n := 1; n < 6; n++ {
			cur := Prefix(items, n, 3)
			next := Prefix(items, n+1, 3)
			assert.Equal(t, cur, next[:len(cur)])
		}
	})
}

func TestHasMore(t *testing.T) {
	assert.True(t, HasMore(10, 1, 3))
	assert.True(t, HasMore(10, 3, 3))
	assert.False(t, HasMore(10, 4, 3))
	assert.False(t, HasMore(0, 1, 36))
	assert.False(t, HasMore(10, 1, 0))
}

func TestWindow(t *testing.T) {
	items := seq(85)

	t.Run("middle page", func(t *testing.T) {
		p := Window(items, 2, 40)
		assert.Equal(t, 40, p.Items[0])
		assert.Len(t, p.Items, 40)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, 85, p.Total)
		assert.True(t, p.HasPrev)
		assert.True(t, p.HasNext)
	})

	t.Run("last page is short", func(t *testing.T) {
		p := Window(items, 3, 40)
		assert.Equal(t, []int{80, 81, 82, 83, 84}, p.Items)
		assert.False(t, p.HasNext)
	})

	t.Run("clamps past the end", func(t *testing.T) {
		p := Window(items, 9, 40)
		assert.Equal(t, 3, p.Page)
	})

	t.Run("clamps below one", func(t *testing.T) {
		p := Window(items, -2, 40)
		assert.Equal(t, 1, p.Page)
		assert.False(t, p.HasPrev)
	})

	t.Run("empty sequence", func(t *testing.T) {
		p := Window([]int{}, 1, 40)
		assert.Empty(t, p.Items)
		assert.Equal(t, 0, p.TotalPages)
		assert.Equal(t, 1, p.Page)
		assert.False(t, p.HasNext)
	})

	t.Run("pages are disjoint", func(t *testing.T) {
		a := Window(items, 1, 40).Items
		b := Window(items, 2, 40).Items
		assert.NotEqual(t, a[len(a)-1], b[0])
		assert.Equal(t, a[len(a)-1]+1, b[0])
	})
}

func TestClampAndTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 40))
	assert.Equal(t, 1, TotalPages(40, 40))
	assert.Equal(t, 2, TotalPages(41, 40))
	assert.Equal(t, 1, Clamp(0, 0))
	assert.Equal(t, 2, Clamp(5, 2))
}
