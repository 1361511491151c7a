package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// htmlServer serves a fixed HTML body and records the last request.
func htmlServer(t *testing.T, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var last http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = *r
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &last
}

func TestExtract_Non200StatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	e := NewFlibustaExtractor(srv.URL, srv.Client())
	if _, err := e.Extract(context.Background(), "tolstoy"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestExtract_TimeoutIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	e := NewFlibustaExtractor(srv.URL, &http.Client{Timeout: 50 * time.Millisecond})
	if _, err := e.Extract(context.Background(), "tolstoy"); err == nil {
		t.Fatal("expected an error when the site hangs past the timeout")
	}
}

func TestExtract_SendsBrowserUserAgent(t *testing.T) {
	srv, last := htmlServer(t, "<html></html>")

	e := NewLitnetExtractor(srv.URL, srv.Client())
	if _, err := e.Extract(context.Background(), "q"); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got := last.Header.Get("User-Agent"); got != browserUserAgent {
		t.Errorf("expected spoofed browser User-Agent, got %q", got)
	}
}
