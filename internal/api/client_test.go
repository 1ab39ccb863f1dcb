package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blackwell-systems/hubctl/internal/api"
	"github.com/blackwell-systems/hubctl/internal/catalog"
)

func newClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, "tok123", nil)
}

func TestListResources(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/resources/list" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"r1","title":"AI Basics","file_type":"pdf"}]`))
	}))

	got, err := c.ListResources(context.Background(), "")
	if err != nil {
		t.Fatalf("ListResources: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r1" || got[0].Type() != catalog.TypePDF {
		t.Errorf("got %+v", got)
	}
}

func TestListResources_UploadedByQuery(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("uploaded_by"); got != "u1" {
			t.Errorf("uploaded_by = %q", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	if _, err := c.ListResources(context.Background(), "u1"); err != nil {
		t.Fatalf("ListResources: %v", err)
	}
}

func TestGetResource_SendsSessionCookie(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("token")
		if err != nil || ck.Value != "tok123" {
			t.Errorf("session cookie missing or wrong: %v", err)
		}
		_, _ = w.Write([]byte(`{"_id":"r1","title":"AI Basics","file_type":"pdf"}`))
	}))
	r, err := c.GetResource(context.Background(), "r1")
	if err != nil {
		t.Fatalf("GetResource: %v", err)
	}
	if r.Title != "AI Basics" {
		t.Errorf("Title = %q", r.Title)
	}
}

func TestGetResource_ServerError(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database down"}`))
	}))
	_, err := c.GetResource(context.Background(), "r1")
	var se *api.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want StatusError", err)
	}
	if se.Message != "database down" {
		t.Errorf("Message = %q", se.Message)
	}
}

func TestGetResource_NotFound(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no such resource"}`))
	}))
	_, err := c.GetResource(context.Background(), "nope")
	if !errors.Is(err, api.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetResource_NonJSONBodyIsParseError(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>502 Bad Gateway</html>`))
	}))
	_, err := c.GetResource(context.Background(), "r1")
	var pe *api.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}

func TestToggleBookmark(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/user/bookmark/r1" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"message":"Bookmark added","bookmarked":true}`))
	}))
	bookmarked, err := c.ToggleBookmark(context.Background(), "r1")
	if err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	if !bookmarked {
		t.Error("bookmarked = false, want true")
	}
}

func TestUpload_MultipartFields(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		want := map[string]string{
			"title":         "Go Notes",
			"description":   "Collected study notes",
			"categories":    "Go,Web",
			"file_type":     "txt",
			"external_link": "https://example.com/notes.txt",
			"user_id":       "u1",
		}
		for k, v := range want {
			if got := r.FormValue(k); got != v {
				t.Errorf("form[%q] = %q, want %q", k, got, v)
			}
		}
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))

	d := &catalog.Draft{
		Title:       "Go Notes",
		Description: "Collected study notes",
		Categories:  []string{"Go", "Web"},
		FileType:    "txt",
		Link:        "https://example.com/notes.txt",
		UserID:      "u1",
	}
	if err := c.Upload(context.Background(), d); err != nil {
		t.Fatalf("Upload: %v", err)
	}
}

func TestUpload_InvalidDraftIssuesNoRequest(t *testing.T) {
	requests := 0
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	err := c.Upload(context.Background(), &catalog.Draft{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if requests != 0 {
		t.Errorf("invalid draft issued %d requests", requests)
	}
}

func TestMe_AnonymousShortCircuits(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := api.New(srv.URL, "", nil)
	_, err := c.Me(context.Background())
	if !errors.Is(err, api.ErrAuthRequired) {
		t.Fatalf("err = %v, want ErrAuthRequired", err)
	}
	if requests != 0 {
		t.Errorf("anonymous Me issued %d requests", requests)
	}
}

func TestLogin_CapturesTokenCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "fresh-token"})
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, "", nil)
	tok, err := c.Login(context.Background(), "a@b.c", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok != "fresh-token" || c.Token() != "fresh-token" {
		t.Errorf("token = %q, client token = %q", tok, c.Token())
	}
}

func TestLogin_Failure(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"bad credentials"}`))
	}))
	_, err := c.Login(context.Background(), "a@b.c", "wrong")
	if !errors.Is(err, api.ErrAuthRequired) {
		t.Fatalf("err = %v, want ErrAuthRequired", err)
	}
}

func TestFetchContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("package main\n"))
	}))
	defer srv.Close()

	c := api.New(srv.URL, "", nil)
	got, err := c.FetchContent(context.Background(), srv.URL+"/main.go")
	if err != nil {
		t.Fatalf("FetchContent: %v", err)
	}
	if got != "package main\n" {
		t.Errorf("content = %q", got)
	}
}

func TestFetchContent_FailureIsDistinct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := api.New(srv.URL, "", nil)
	_, err := c.FetchContent(context.Background(), srv.URL+"/x.txt")
	var se *api.StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusForbidden {
		t.Fatalf("err = %v, want StatusError 403", err)
	}
}
