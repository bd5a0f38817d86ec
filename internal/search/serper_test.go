package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/optivex/lumexa-go/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.Config{
		SerperAPIKey:   "test-key",
		SerperBaseURL:  srv.URL,
		RequestTimeout: 5 * time.Second,
	}, nil)
}

func TestSearch(t *testing.T) {
	var gotPath, gotKey string
	var gotReq serperRequest

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-KEY")
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(`{"organic":[
			{"title":"Go","link":"https://go.dev","snippet":"The Go language"},
			{"title":"Go Blog","link":"https://go.dev/blog","snippet":"News"}
		]}`))
	})

	results, err := c.Search(context.Background(), "golang", 20)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotPath != "/search" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("X-API-KEY = %q", gotKey)
	}
	if gotReq.Q != "golang" || gotReq.Num != 20 {
		t.Errorf("request = %+v", gotReq)
	}
	if len(results) != 2 || results[0].Title != "Go" || results[1].Link != "https://go.dev/blog" {
		t.Errorf("results = %+v", results)
	}
}

func TestSearchNoOrganicField(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	results, err := c.Search(context.Background(), "anything", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Errorf("results = %#v, want empty non-nil slice", results)
	}
}

func TestImages(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"images":[{"imageUrl":"https://cdn.example.com/a.jpg"},{"imageUrl":"https://cdn.example.com/b.png"}]}`))
	})

	urls, err := c.Images(context.Background(), "gophers", 10)
	if err != nil {
		t.Fatalf("Images: %v", err)
	}
	if gotPath != "/images" {
		t.Errorf("path = %q", gotPath)
	}
	if len(urls) != 2 || urls[0] != "https://cdn.example.com/a.jpg" {
		t.Errorf("urls = %v", urls)
	}
}

func TestMissingAPIKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(config.Config{SerperBaseURL: srv.URL, RequestTimeout: time.Second}, nil)

	_, err := c.Search(context.Background(), "q", 0)
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
	if called {
		t.Error("no network call should happen without an API key")
	}
}

func TestUpstreamError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusForbidden)
	})

	if _, err := c.Search(context.Background(), "q", 0); err == nil {
		t.Error("expected error for non-200 response")
	}
}
