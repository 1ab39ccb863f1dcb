package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/blackwell-systems/hubctl/internal/catalog"
)

// Me resolves the current identity from the session cookie.
func (c *Client) Me(ctx context.Context) (*catalog.User, error) {
	if c.token == "" {
		return nil, ErrAuthRequired
	}
	var out catalog.User
	if err := c.doJSON(ctx, http.MethodGet, c.url("api", "user", "me"), nil, "", &out); err != nil {
		return nil, fmt.Errorf("resolving identity: %w", err)
	}
	return &out, nil
}

// ToggleBookmark flips the (user, resource) bookmark membership and
// returns the server's new membership state. The server toggles rather
// than sets, so two consecutive calls restore the original state.
func (c *Client) ToggleBookmark(ctx context.Context, resourceID string) (bool, error) {
	var out struct {
		Bookmarked bool `json:"bookmarked"`
	}
	if err := c.doJSON(ctx, http.MethodPost, c.url("api", "user", "bookmark", resourceID), nil, "", &out); err != nil {
		return false, fmt.Errorf("toggling bookmark: %w", err)
	}
	return out.Bookmarked, nil
}

// Bookmarks lists the current user's bookmarked resources.
func (c *Client) Bookmarks(ctx context.Context) ([]catalog.Resource, error) {
	var out []catalog.Resource
	if err := c.doJSON(ctx, http.MethodGet, c.url("api", "user", "bookmarks"), nil, "", &out); err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	return out, nil
}
