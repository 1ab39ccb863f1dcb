package catalog

// TotalPages returns the page count for n items: at least 1, even for an
// empty view.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate returns the page-th slice (1-based) of view, clipped to its
// bounds. Out-of-range pages yield an empty slice rather than panicking.
func Paginate(view []Resource, page, pageSize int) []Resource {
	if pageSize <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(view) {
		return nil
	}
	end := start + pageSize
	if end > len(view) {
		end = len(view)
	}
	return view[start:end]
}

// Pager holds a 1-based page cursor over a view of known size.
type Pager struct {
	Page     int
	PageSize int
	total    int
}

// NewPager returns a Pager positioned on page 1.
func NewPager(pageSize, totalItems int) Pager {
	return Pager{Page: 1, PageSize: pageSize, total: totalItems}
}

// TotalPages returns the pager's page count.
func (p Pager) TotalPages() int {
	return TotalPages(p.total, p.PageSize)
}

// Next advances one page; a no-op on the last page.
func (p *Pager) Next() {
	if p.Page < p.TotalPages() {
		p.Page++
	}
}

// Prev steps back one page; a no-op on page 1.
func (p *Pager) Prev() {
	if p.Page > 1 {
		p.Page--
	}
}

// Reset moves back to page 1 for a view of newTotal items. Callers that
// change the upstream filter own this reset; the pager itself never
// inspects the filter.
func (p *Pager) Reset(newTotal int) {
	p.Page = 1
	p.total = newTotal
}
