package request

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/praxishq/praxis-client/internal/apierr"
)

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()
	var hits int32
	ex, _ := newTestExecutor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}), func(cfg *Config) {
		cfg.Breaker = &BreakerConfig{MaxRequests: 1, ConsecutiveFailures: 2}
	})

	// First three failures reach the server; the third trips the breaker.
	for i := 0; i < 3; i++ {
		if _, err := ex.Do(context.Background(), Call{Path: "/x", Endpoint: "x"}); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}
	if hits != 3 {
		t.Fatalf("server hit %d times, want 3", hits)
	}

	_, err := ex.Do(context.Background(), Call{Path: "/x", Endpoint: "x"})
	e, ok := apierr.As(err)
	if !ok || e.Kind != apierr.KindNetwork || e.Message != "Service temporarily unavailable" {
		t.Fatalf("open-breaker error unexpected: %v", err)
	}
	if hits != 3 {
		t.Fatalf("open breaker still reached the server: %d hits", hits)
	}
}

func TestBreakerIgnoresClientErrors(t *testing.T) {
	t.Parallel()
	var hits int32
	ex, _ := newTestExecutor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}), func(cfg *Config) {
		cfg.Breaker = &BreakerConfig{MaxRequests: 1, ConsecutiveFailures: 2}
	})

	// 4xx responses are not transient; they must never trip the breaker.
	for i := 0; i < 6; i++ {
		_, err := ex.Do(context.Background(), Call{Path: "/x", Endpoint: "x"})
		e, ok := apierr.As(err)
		if !ok || e.Status != 404 {
			t.Fatalf("call %d: expected 404, got %v", i, err)
		}
	}
	if hits != 6 {
		t.Fatalf("server hit %d times, want 6", hits)
	}
}

func TestBreakerIsPerEndpoint(t *testing.T) {
	t.Parallel()
	var healthyHits int32
	ex, _ := newTestExecutor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		atomic.AddInt32(&healthyHits, 1)
		_, _ = w.Write([]byte(`{}`))
	}), func(cfg *Config) {
		cfg.Breaker = &BreakerConfig{MaxRequests: 1, ConsecutiveFailures: 1}
	})

	for i := 0; i < 4; i++ {
		_, _ = ex.Do(context.Background(), Call{Path: "/bad", Endpoint: "bad"})
	}
	// The healthy endpoint's breaker is independent of the tripped one.
	if _, err := ex.Do(context.Background(), Call{Path: "/ok", Endpoint: "ok"}); err != nil {
		t.Fatalf("healthy endpoint affected by tripped breaker: %v", err)
	}
	if healthyHits != 1 {
		t.Fatalf("healthy endpoint hit %d times, want 1", healthyHits)
	}
}
