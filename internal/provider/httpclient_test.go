package provider

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetJSONWithRetry_NotFoundIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	_, err := getJSONWithRetry(context.Background(), client, srv.URL, nil, 3)
	if err == nil {
		t.Fatalf("expected error on 404")
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("404 was requested %d times, want 1", got)
	}
}

func TestGetJSONWithRetry_ServerErrorRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	body, err := getJSONWithRetry(context.Background(), client, srv.URL, nil, 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(string(body), "ok") {
		t.Fatalf("unexpected body %q", body)
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected a retry after 500, got %d requests", got)
	}
}

func TestReadAllLimit(t *testing.T) {
	exact := bytes.Repeat([]byte("a"), 16)
	got, err := readAllLimit(bytes.NewReader(exact), 16)
	if err != nil {
		t.Fatalf("body of exactly the limit must be accepted: %v", err)
	}
	if len(got) != 16 {
		t.Fatalf("read %d bytes, want 16", len(got))
	}

	over := bytes.Repeat([]byte("a"), 17)
	if _, err := readAllLimit(bytes.NewReader(over), 16); err == nil {
		t.Fatalf("body over the limit must be rejected")
	}
}
