package catalog

// BrowseState couples a collection snapshot with the current filter and
// page cursor. It is the one place that owns the rule "changing the
// filter resets the page to 1"; page navigation never touches the
// filter, and the view is recomputed from scratch on every change.
type BrowseState struct {
	store  *Store
	filter Filter
	pager  Pager
	view   []Resource
}

// NewBrowseState returns a state over store, unfiltered, on page 1.
func NewBrowseState(store *Store, pageSize int) *BrowseState {
	b := &BrowseState{store: store}
	b.view = b.filter.Apply(store.All())
	b.pager = NewPager(pageSize, len(b.view))
	return b
}

// SetQuery updates the search text, recomputes the view, and resets to
// page 1.
func (b *BrowseState) SetQuery(q string) {
	if b.filter.Query == q {
		return
	}
	b.filter.Query = q
	b.recompute()
}

// SetType updates the type filter, recomputes the view, and resets to
// page 1.
func (b *BrowseState) SetType(t string) {
	if b.filter.Type == t {
		return
	}
	b.filter.Type = t
	b.recompute()
}

// Refresh re-derives the view from the store without changing the
// filter. Used after the snapshot is replaced or a bookmark is
// reconciled. The page resets because the view may have shrunk.
func (b *BrowseState) Refresh() {
	b.recompute()
}

// NextPage advances the cursor; a clamped no-op on the last page.
func (b *BrowseState) NextPage() { b.pager.Next() }

// PrevPage steps back; a clamped no-op on page 1.
func (b *BrowseState) PrevPage() { b.pager.Prev() }

// Page returns the current page slice of the filtered view.
func (b *BrowseState) Page() []Resource {
	return Paginate(b.view, b.pager.Page, b.pager.PageSize)
}

// View returns the whole filtered view.
func (b *BrowseState) View() []Resource { return b.view }

// CurrentPage returns the 1-based page cursor.
func (b *BrowseState) CurrentPage() int { return b.pager.Page }

// TotalPages returns the page count for the current view.
func (b *BrowseState) TotalPages() int { return b.pager.TotalPages() }

// Filter returns the active filter.
func (b *BrowseState) Filter() Filter { return b.filter }

func (b *BrowseState) recompute() {
	b.view = b.filter.Apply(b.store.All())
	b.pager.Reset(len(b.view))
}
