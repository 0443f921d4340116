package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFixedWindowLimits(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter := NewFixedWindow()
	limiter.Now = func() time.Time { return now }

	window := time.Minute
	for i := 0; i < 3; i++ {
		allowed, _, _, err := limiter.Allow(context.Background(), "key", window, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	allowed, remaining, reset, err := limiter.Allow(context.Background(), "key", window, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatal("fourth request should be rejected")
	}
	if remaining != 0 {
		t.Fatalf("expected 0 remaining, got %d", remaining)
	}
	if !reset.Equal(now.Add(window)) {
		t.Fatalf("expected reset at window end, got %s", reset)
	}

	// A different key has its own window.
	allowed, _, _, _ = limiter.Allow(context.Background(), "other", window, 3)
	if !allowed {
		t.Fatal("independent key should be allowed")
	}

	// After the window passes the original key resets.
	now = now.Add(window)
	allowed, _, _, _ = limiter.Allow(context.Background(), "key", window, 3)
	if !allowed {
		t.Fatal("request after window reset should be allowed")
	}
}

func TestMiddlewareRejectsOverLimit(t *testing.T) {
	limiter := NewFixedWindow()
	handler := Handler{
		Limiter: limiter,
		Config: Config{
			Key:    func(r *http.Request) string { return r.RemoteAddr },
			Window: time.Minute,
			Max:    1,
		},
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := handler.Middleware(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}
