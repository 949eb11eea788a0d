package listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch_VerbatimBody(t *testing.T) {
	const body = `{"data":{"cards":[{"id":1}]}}`

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := New(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != body {
		t.Errorf("body must pass through verbatim: %q", got)
	}
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Errorf("browser User-Agent required, got %q", gotUA)
	}
}

func TestFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Fetch(context.Background()); err == nil {
		t.Fatal("non-2xx must be an error")
	}
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused

	if _, err := New(srv.URL).Fetch(context.Background()); err == nil {
		t.Fatal("transport failure must be an error")
	}
}

func TestNew_DefaultURL(t *testing.T) {
	if c := New(""); c.url != DefaultURL {
		t.Errorf("empty url must fall back to default, got %q", c.url)
	}
}
