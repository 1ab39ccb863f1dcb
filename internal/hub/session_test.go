package hub_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blackwell-systems/hubctl/internal/api"
	"github.com/blackwell-systems/hubctl/internal/hub"
)

func TestResolve_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/user/me" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"_id":"u1","name":"Ada","email":"ada@example.com"}`))
	}))
	defer srv.Close()

	s, err := hub.Resolve(context.Background(), api.New(srv.URL, "tok", nil))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.UserID() != "u1" {
		t.Errorf("UserID = %q", s.UserID())
	}
	if _, err := s.RequireUser(); err != nil {
		t.Errorf("RequireUser: %v", err)
	}
}

func TestResolve_FailureDegradesToAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	s, err := hub.Resolve(context.Background(), api.New(srv.URL, "stale", nil))
	if err == nil {
		t.Fatal("expected the cause to be returned")
	}
	if s == nil {
		t.Fatal("session must not be nil on failure")
	}
	if s.User() != nil {
		t.Error("failed resolution should yield an anonymous session")
	}
}
