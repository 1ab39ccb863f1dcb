// Package hub holds the client-side coordination logic between the API
// and the in-memory catalog: identity resolution and bookmark
// reconciliation.
package hub

import (
	"context"

	"github.com/blackwell-systems/hubctl/internal/api"
	"github.com/blackwell-systems/hubctl/internal/catalog"
)

// Session holds the resolved identity for this run. Resolution failure
// degrades to an anonymous session rather than blocking.
type Session struct {
	user *catalog.User
}

// Resolve fetches the current identity once. Any failure (missing
// token, expired session, network error) still yields a usable
// anonymous session, returned alongside the cause; callers choose
// whether to propagate the error or carry on anonymously.
func Resolve(ctx context.Context, client *api.Client) (*Session, error) {
	u, err := client.Me(ctx)
	if err != nil {
		return &Session{}, err
	}
	return &Session{user: u}, nil
}

// Anonymous returns a session with no identity.
func Anonymous() *Session {
	return &Session{}
}

// FromUser returns a session around an already-resolved user.
func FromUser(u *catalog.User) *Session {
	return &Session{user: u}
}

// User returns the resolved user, or nil when anonymous.
func (s *Session) User() *catalog.User {
	return s.user
}

// UserID returns the resolved user id, or "" when anonymous.
func (s *Session) UserID() string {
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

// RequireUser returns the resolved user or ErrAuthRequired.
func (s *Session) RequireUser() (*catalog.User, error) {
	if s.user == nil {
		return nil, api.ErrAuthRequired
	}
	return s.user, nil
}
