package catalog

// Store holds the full fetched resource collection. The snapshot is
// replaced wholesale on refetch; the only in-place mutation is a
// bookmark reconciliation after a confirmed server response.
type Store struct {
	all []Resource
}

// NewStore returns a Store seeded with the given collection.
func NewStore(all []Resource) *Store {
	return &Store{all: all}
}

// SetAll replaces the snapshot.
func (s *Store) SetAll(all []Resource) {
	s.all = all
}

// All returns the current snapshot.
func (s *Store) All() []Resource {
	return s.all
}

// Len returns the snapshot size.
func (s *Store) Len() int {
	return len(s.all)
}

// ByID returns the stored resource with the given ID, or nil.
func (s *Store) ByID(id string) *Resource {
	return ByID(s.all, id)
}

// ApplyBookmark reconciles one resource's bookmark set with the server's
// authoritative answer: userID is added when bookmarked is true and
// removed when false. Applying the same answer twice is a no-op. Returns
// false if the resource is not in the store.
func (s *Store) ApplyBookmark(resourceID, userID string, bookmarked bool) bool {
	r := s.ByID(resourceID)
	if r == nil {
		return false
	}
	if bookmarked {
		if !r.IsBookmarkedBy(userID) {
			r.BookmarkedBy = append(r.BookmarkedBy, userID)
		}
		return true
	}
	for i, id := range r.BookmarkedBy {
		if id == userID {
			r.BookmarkedBy = append(r.BookmarkedBy[:i], r.BookmarkedBy[i+1:]...)
			break
		}
	}
	return true
}
