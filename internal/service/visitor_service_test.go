package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVisitorServiceNotConfigured(t *testing.T) {
	svc := NewVisitorService(NewMemoryCache(), "", "")
	if _, err := svc.Count(context.Background()); !errors.Is(err, ErrAnalyticsNotConfigured) {
		t.Fatalf("count without credentials = %v, want ErrAnalyticsNotConfigured", err)
	}
}

func TestVisitorServiceCountAndCache(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if got := r.Header.Get("Authorization"); got != "Bearer umami-key" {
			t.Errorf("authorization header = %q", got)
		}
		if r.URL.Query().Get("startAt") == "" || r.URL.Query().Get("endAt") == "" {
			t.Error("missing time range query params")
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"pageviews": map[string]int{"value": 4242},
			"visitors":  map[string]int{"value": 900},
		})
	}))
	defer server.Close()

	svc := NewVisitorService(NewMemoryCache(), "site-id", "umami-key")
	svc.SetBaseURL(server.URL)

	count, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 4242 {
		t.Errorf("count = %d, want 4242", count)
	}

	// Second call is served from cache.
	count, err = svc.Count(context.Background())
	if err != nil {
		t.Fatalf("cached count: %v", err)
	}
	if count != 4242 {
		t.Errorf("cached count = %d, want 4242", count)
	}
	if calls != 1 {
		t.Errorf("provider called %d times, want 1", calls)
	}
}

func TestVisitorServiceFallsBackToVisitors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"pageviews": map[string]int{"value": 0},
			"visitors":  map[string]int{"value": 17},
		})
	}))
	defer server.Close()

	svc := NewVisitorService(NewMemoryCache(), "site-id", "umami-key")
	svc.SetBaseURL(server.URL)

	count, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 17 {
		t.Errorf("count = %d, want visitors fallback 17", count)
	}
}

func TestVisitorServiceProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewVisitorService(NewMemoryCache(), "site-id", "bad-key")
	svc.SetBaseURL(server.URL)

	if _, err := svc.Count(context.Background()); err == nil {
		t.Fatal("expected provider error")
	}
}
