package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"optica-vista-me/query"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_Basics(t *testing.T) {
	p := query.Paginate(intRange(25), 2, 10)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, p.Items)
	assert.Equal(t, 10, p.StartIndex)
	assert.Equal(t, 20, p.EndIndex)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestPaginate_EmptyCollection(t *testing.T) {
	p := query.Paginate([]int{}, 1, 10)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.TotalPages)
	assert.Empty(t, p.Items)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestPaginate_ClampsOutOfRangePages(t *testing.T) {
	items := intRange(25)

	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, 1, query.Paginate(items, 0, 10).Page)
	})
	t.Run("negative", func(t *testing.T) {
		assert.Equal(t, 1, query.Paginate(items, -4, 10).Page)
	})
	t.Run("past the end", func(t *testing.T) {
		p := query.Paginate(items, 99, 10)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, []int{21, 22, 23, 24, 25}, p.Items)
	})
}

func TestPaginate_PageAlwaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 500).Draw(t, "total")
		page := rapid.IntRange(-10, 600).Draw(t, "page")
		size := rapid.IntRange(1, 50).Draw(t, "size")

		p := query.Paginate(intRange(total), page, size)

		if p.Page < 1 || p.Page > p.TotalPages {
			t.Fatalf("page %d outside [1, %d]", p.Page, p.TotalPages)
		}
		if p.EndIndex < p.StartIndex || p.EndIndex > p.Total {
			t.Fatalf("bad slice bounds [%d, %d) of %d", p.StartIndex, p.EndIndex, p.Total)
		}
	})
}

func TestRepositionPage_KeepsFirstVisibleItem(t *testing.T) {
	// Page 3 at size 10 shows items 21-30. After switching to size 25 the
	// page must still contain item 21.
	newPage := query.RepositionPage(3, 10, 25)
	p := query.Paginate(intRange(30), newPage, 25)

	assert.Contains(t, p.Items, 21)
}

func TestRepositionPage_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(1, 400).Draw(t, "total")
		oldSize := rapid.IntRange(1, 40).Draw(t, "oldSize")
		newSize := rapid.IntRange(1, 40).Draw(t, "newSize")
		items := intRange(total)

		before := query.Paginate(items, rapid.IntRange(1, 40).Draw(t, "page"), oldSize)
		if len(before.Items) == 0 {
			return
		}
		firstVisible := before.Items[0]

		after := query.Paginate(items, query.RepositionPage(before.Page, oldSize, newSize), newSize)

		found := false
		for _, v := range after.Items {
			if v == firstVisible {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("item %d not on page %d after resize %d->%d", firstVisible, after.Page, oldSize, newSize)
		}
	})
}

func TestPageState_SetPageSize(t *testing.T) {
	s := query.PageState{Page: 3, PageSize: 10}
	s.SetPageSize(25)

	assert.Equal(t, 25, s.PageSize)
	assert.Equal(t, 1, s.Page) // item 21 lives on page 1 at size 25
}
