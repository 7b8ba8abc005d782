package query

// Page is one bounded window over a collection plus the navigation
// metadata a listing needs to render its pager.
type Page[T any] struct {
	Page       int // 1-based, always within [1, TotalPages]
	PageSize   int
	Total      int
	TotalPages int
	Items      []T
	StartIndex int // zero-based offset of the first item in Items
	EndIndex   int // exclusive
	HasNext    bool
	HasPrev    bool
}

// Paginate slices items into the requested page. Out-of-range page
// requests never fail: the page number is clamped into [1, TotalPages]
// before slicing. A pageSize below 1 is treated as 1.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := page * pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		Items:      items[start:end],
		StartIndex: start,
		EndIndex:   end,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// RepositionPage computes the page that keeps the first currently-visible
// item in view after a page-size change. The result still needs clamping,
// which Paginate performs.
func RepositionPage(oldPage, oldSize, newSize int) int {
	if oldSize < 1 {
		oldSize = 1
	}
	if newSize < 1 {
		newSize = 1
	}
	firstVisible := (oldPage-1)*oldSize + 1
	if firstVisible < 1 {
		firstVisible = 1
	}
	return (firstVisible + newSize - 1) / newSize
}

// PageState is the transient pagination selection for one view session
type PageState struct {
	Page     int
	PageSize int
}

// SetPageSize changes the page size while keeping the first visible item
// in view.
func (p *PageState) SetPageSize(newSize int) {
	p.Page = RepositionPage(p.Page, p.PageSize, newSize)
	p.PageSize = newSize
}

// Reset returns the state to the first page
func (p *PageState) Reset() {
	p.Page = 1
}
