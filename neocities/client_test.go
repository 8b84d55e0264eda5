package neocities

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/jsonapi"
	"github.com/google/go-cmp/cmp"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/list", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer valid-key" {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"result":"error","error_type":"invalid_auth","message":"invalid credentials - please check your username and password"}`))
			return
		}
		w.Write([]byte(`{"result":"success","info":{"sitename":"example"},"files":[{"path":"index.html","is_directory":false,"size":1023,"updated_at":"Sat, 13 Feb 2016 03:04:00 -0000"},{"path":"images","is_directory":true,"updated_at":"Sat, 13 Feb 2016 03:04:00 -0000"}]}`))
	})
	mux.HandleFunc("GET /api/info", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","info":{"sitename":"example"}}`))
	})
	mux.HandleFunc("GET /sites/example/index.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<h1>Hello</h1>"))
	})
	mux.HandleFunc("GET /sites/example/blog/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sites/example/blog/my post.html" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("<h1>Spaces</h1>"))
	})
	mux.HandleFunc("GET /api/broken/list", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})
	s := httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func TestList(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	t.Run("files are listed", func(t *testing.T) {
		c := New(s.URL+"/api", s.URL+"/sites/%s", "valid-key")
		actual, err := c.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := ListResponse{
			Result: "success",
			Info:   SiteInfo{Sitename: "example"},
			Files: []File{
				{Path: "index.html", Size: 1023, UpdatedAt: "Sat, 13 Feb 2016 03:04:00 -0000"},
				{Path: "images", IsDirectory: true, UpdatedAt: "Sat, 13 Feb 2016 03:04:00 -0000"},
			},
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("API errors return a ListError with the upstream message", func(t *testing.T) {
		c := New(s.URL+"/api", s.URL+"/sites/%s", "invalid-key")
		_, err := c.List(ctx)
		var listErr *ListError
		if !errors.As(err, &listErr) {
			t.Fatalf("expected ListError, got %v", err)
		}
		if listErr.Message != "invalid credentials - please check your username and password" {
			t.Errorf("unexpected message %q", listErr.Message)
		}
	})
	t.Run("invalid responses return an error", func(t *testing.T) {
		c := New(s.URL+"/api/broken", s.URL+"/sites/%s", "valid-key")
		_, err := c.List(ctx)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var listErr *ListError
		if errors.As(err, &listErr) {
			t.Errorf("expected decode error, got ListError")
		}
	})
	t.Run("invalid API URLs return an error", func(t *testing.T) {
		c := New("", s.URL+"/sites/%s", "valid-key")
		if _, err := c.List(ctx); !errors.Is(err, jsonapi.ErrEmptyURL) {
			t.Errorf("expected ErrEmptyURL, got %v", err)
		}
	})
}

func TestInfo(t *testing.T) {
	s := newTestServer(t)
	c := New(s.URL+"/api", s.URL+"/sites/%s", "valid-key")
	actual, err := c.Info(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if actual.Info.Sitename != "example" {
		t.Errorf("expected sitename %q, got %q", "example", actual.Info.Sitename)
	}
}

func TestContent(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	c := New(s.URL+"/api", s.URL+"/sites/%s", "valid-key")

	t.Run("content is downloaded", func(t *testing.T) {
		actual, err := c.Content(ctx, "example", "index.html")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actual != "<h1>Hello</h1>" {
			t.Errorf("unexpected content %q", actual)
		}
	})
	t.Run("paths are URL encoded", func(t *testing.T) {
		actual, err := c.Content(ctx, "example", "blog/my post.html")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actual != "<h1>Spaces</h1>" {
			t.Errorf("unexpected content %q", actual)
		}
	})
	t.Run("non-2xx status codes return an error", func(t *testing.T) {
		_, err := c.Content(ctx, "example", "missing.html")
		var statusErr jsonapi.InvalidStatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("expected InvalidStatusError, got %v", err)
		}
		if statusErr.Status != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", statusErr.Status)
		}
	})
}

func TestSiteURL(t *testing.T) {
	c := New(DefaultAPIURL, DefaultSiteURLTemplate, "")
	tests := []struct {
		path     string
		expected string
	}{
		{path: "index.html", expected: "https://example.neocities.org/index.html"},
		{path: "/index.html", expected: "https://example.neocities.org/index.html"},
		{path: "blog/post.html", expected: "https://example.neocities.org/blog/post.html"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			actual, err := c.SiteURL("example", tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if actual != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, actual)
			}
		})
	}
}
