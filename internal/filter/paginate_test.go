package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i + 1
	}

	t.Run("Full first page", func(t *testing.T) {
		page, total := Paginate(items, 1, 5)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, page)
		assert.Equal(t, 3, total)
	})

	t.Run("Partial last page", func(t *testing.T) {
		page, total := Paginate(items, 3, 5)
		assert.Equal(t, []int{11, 12}, page)
		assert.Equal(t, 3, total)
	})

	t.Run("Out-of-range page is empty", func(t *testing.T) {
		page, total := Paginate(items, 4, 5)
		assert.Empty(t, page)
		assert.Equal(t, 3, total)

		page, _ = Paginate(items, 0, 5)
		assert.Empty(t, page)
	})

	t.Run("Empty input has no pages", func(t *testing.T) {
		page, total := Paginate([]int{}, 1, 5)
		assert.Empty(t, page)
		assert.Equal(t, 0, total)
	})
}
