package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/praxishq/praxis-client/internal/request"
)

// Option configures a Client during construction in New.
//
// Options must be deterministic and side-effect free; they run before the
// executor is assembled, so every knob they set is visible to it.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the layer.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithTokenProvider registers the auth collaborator's token function,
// consulted on every request. A provider returning "" sends the request
// unauthenticated; the layer never treats a missing token as an error.
func WithTokenProvider(fn TokenProvider) Option {
	return func(c *Client) error {
		if fn == nil {
			return fmt.Errorf("token provider must not be nil")
		}
		c.tokens = fn
		return nil
	}
}

// WithUnauthorizedHandler registers the navigation collaborator's callback,
// invoked exactly once per 401 response in addition to the typed error the
// caller receives.
func WithUnauthorizedHandler(fn UnauthorizedHandler) Option {
	return func(c *Client) error {
		if fn == nil {
			return fmt.Errorf("unauthorized handler must not be nil")
		}
		c.onUnauthorized = fn
		return nil
	}
}

// WithRetry configures the retry wrapper used by the read endpoints that opt
// in: maxRetries re-attempts with a constant delay between them. Setting
// maxRetries to zero disables retry entirely.
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(c *Client) error {
		if maxRetries < 0 {
			return fmt.Errorf("max retries must be >= 0")
		}
		if delay < 0 {
			return fmt.Errorf("retry delay must be >= 0")
		}
		c.maxRetries = maxRetries
		c.retryDelay = delay
		return nil
	}
}

// WithCacheTTL sets the expiry applied to cached list and summary reads.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("cache ttl must be > 0")
		}
		c.cacheTTL = d
		return nil
	}
}

// WithCacheStore swaps the in-memory store for an external cache
// collaborator.
func WithCacheStore(s CacheStore) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("cache store must not be nil")
		}
		c.cache = s
		return nil
	}
}

// WithCircuitBreaker puts a per-endpoint circuit breaker in front of the
// transport: after consecutiveFailures transient failures in a row the
// endpoint fails fast until the breaker half-opens, letting maxRequests
// probes through. Disabled by default.
func WithCircuitBreaker(maxRequests, consecutiveFailures uint32) Option {
	return func(c *Client) error {
		if consecutiveFailures == 0 {
			return fmt.Errorf("consecutive failures must be > 0")
		}
		c.breaker = &request.BreakerConfig{
			MaxRequests:         maxRequests,
			ConsecutiveFailures: consecutiveFailures,
		}
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and may include headers and method/URL metadata in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
