package hub

import (
	"context"

	"github.com/blackwell-systems/hubctl/internal/api"
	"github.com/blackwell-systems/hubctl/internal/catalog"
)

// Coordinator manages the per-resource bookmark toggle against the
// server and reconciles the local store with the server's answer.
type Coordinator struct {
	client  *api.Client
	store   *catalog.Store
	session *Session
}

// NewCoordinator wires a Coordinator over the given client, store, and
// session.
func NewCoordinator(client *api.Client, store *catalog.Store, session *Session) *Coordinator {
	return &Coordinator{client: client, store: store, session: session}
}

// Toggle flips the bookmark for the current user on one resource.
//
// The local set is updated strictly after the server declares the new
// membership state: no optimistic flip happens before the call, so
// there is nothing to roll back on failure. On any error the set is
// left untouched and the error is surfaced; the toggle is never
// retried automatically. Returns the confirmed membership state.
func (c *Coordinator) Toggle(ctx context.Context, resourceID string) (bool, error) {
	user, err := c.session.RequireUser()
	if err != nil {
		return false, err
	}

	bookmarked, err := c.client.ToggleBookmark(ctx, resourceID)
	if err != nil {
		return false, err
	}

	c.store.ApplyBookmark(resourceID, user.ID, bookmarked)
	return bookmarked, nil
}

// IsBookmarked reports the local membership state for the current user.
func (c *Coordinator) IsBookmarked(resourceID string) bool {
	r := c.store.ByID(resourceID)
	if r == nil {
		return false
	}
	return r.IsBookmarkedBy(c.session.UserID())
}
