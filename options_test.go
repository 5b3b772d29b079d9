package client

import (
	"context"
	"testing"
	"time"
)

func expectOptionError(t *testing.T, opt Option) {
	t.Helper()
	if err := opt(&Client{}); err == nil {
		t.Fatal("expected option error")
	}
}

func TestWithHTTPTimeout(t *testing.T) {
	c := New("http://example.com", WithHTTPTimeout(5*time.Second))
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("timeout %v, want 5s", c.http.Timeout)
	}
	expectOptionError(t, WithHTTPTimeout(0))
	expectOptionError(t, WithHTTPTimeout(-time.Second))
}

func TestWithTokenProvider(t *testing.T) {
	c := New("http://example.com", WithTokenProvider(func(context.Context) (string, error) { return "tok", nil }))
	if c.tokens == nil {
		t.Fatal("token provider not set")
	}
	expectOptionError(t, WithTokenProvider(nil))
}

func TestWithUnauthorizedHandler(t *testing.T) {
	c := New("http://example.com", WithUnauthorizedHandler(func() {}))
	if c.onUnauthorized == nil {
		t.Fatal("unauthorized handler not set")
	}
	expectOptionError(t, WithUnauthorizedHandler(nil))
}

func TestWithRetry(t *testing.T) {
	c := New("http://example.com", WithRetry(3, time.Second))
	if c.maxRetries != 3 || c.retryDelay != time.Second {
		t.Fatalf("retry config unexpected: %d %v", c.maxRetries, c.retryDelay)
	}
	expectOptionError(t, WithRetry(-1, time.Second))
	expectOptionError(t, WithRetry(1, -time.Second))
}

func TestWithCacheTTL(t *testing.T) {
	c := New("http://example.com", WithCacheTTL(time.Minute))
	if c.cacheTTL != time.Minute {
		t.Fatalf("cache ttl %v, want 1m", c.cacheTTL)
	}
	expectOptionError(t, WithCacheTTL(0))
}

func TestWithCacheStore(t *testing.T) {
	expectOptionError(t, WithCacheStore(nil))
}

func TestWithCircuitBreaker(t *testing.T) {
	c := New("http://example.com", WithCircuitBreaker(1, 3))
	if c.breaker == nil || c.breaker.ConsecutiveFailures != 3 {
		t.Fatalf("breaker config unexpected: %+v", c.breaker)
	}
	expectOptionError(t, WithCircuitBreaker(1, 0))
}

func TestNewPanicsOnBadOption(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid option")
		}
	}()
	New("http://example.com", WithHTTPTimeout(0))
}
