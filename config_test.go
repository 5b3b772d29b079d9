package client

import (
	"testing"
	"time"
)

func TestNewFromEnv(t *testing.T) {
	t.Setenv("PRAXIS_BASE_URL", "http://backend.internal")
	t.Setenv("PRAXIS_HTTP_TIMEOUT", "10s")
	t.Setenv("PRAXIS_MAX_RETRIES", "1")
	t.Setenv("PRAXIS_RETRY_DELAY", "50ms")
	t.Setenv("PRAXIS_CACHE_TTL", "1m")

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.baseURL != "http://backend.internal" {
		t.Fatalf("base url %q", c.baseURL)
	}
	if c.http.Timeout != 10*time.Second || c.maxRetries != 1 || c.retryDelay != 50*time.Millisecond || c.cacheTTL != time.Minute {
		t.Fatalf("env config not applied: timeout=%v retries=%d delay=%v ttl=%v", c.http.Timeout, c.maxRetries, c.retryDelay, c.cacheTTL)
	}
}

func TestNewFromEnvMissingBaseURL(t *testing.T) {
	t.Setenv("PRAXIS_BASE_URL", "")
	if _, err := NewFromEnv(); err == nil {
		t.Fatal("expected error without PRAXIS_BASE_URL")
	}
}

func TestNewFromEnvExplicitOptionWins(t *testing.T) {
	t.Setenv("PRAXIS_BASE_URL", "http://backend.internal")
	t.Setenv("PRAXIS_HTTP_TIMEOUT", "10s")
	c, err := NewFromEnv(WithHTTPTimeout(3 * time.Second))
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.http.Timeout != 3*time.Second {
		t.Fatalf("explicit option lost: %v", c.http.Timeout)
	}
}
