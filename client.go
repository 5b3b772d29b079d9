// Package client is the request layer of the Praxis assessment dashboard:
// the single chokepoint through which every backend call passes. It injects
// auth tokens, classifies failures into typed errors, redirects on session
// expiry, retries transient failures on read endpoints, caches list and
// summary reads by logical resource key, and keeps a bounded call history
// for the debug panel.
package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/praxishq/praxis-client/internal/api"
	"github.com/praxishq/praxis-client/internal/history"
	"github.com/praxishq/praxis-client/internal/request"
	"github.com/praxishq/praxis-client/internal/rescache"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	exec    *request.Executor
	cache   CacheStore
	history *history.Recorder

	tokens         TokenProvider
	onUnauthorized UnauthorizedHandler
	breaker        *request.BreakerConfig

	maxRetries int
	retryDelay time.Duration
	cacheTTL   time.Duration

	closedOnce uint32 // ensures Close is idempotent
}

// Defaults applied by New; all overridable via options.
const (
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxRetries  = 2
	defaultRetryDelay  = 500 * time.Millisecond
	defaultCacheTTL    = 5 * time.Minute
)

// New constructs a Client for the backend at baseURL. Endpoint paths are
// concatenated onto baseURL verbatim, so it should not carry a trailing
// slash. Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:    baseURL,
		http:       &http.Client{Timeout: defaultHTTPTimeout},
		cache:      rescache.NewMemoryStore(),
		history:    history.NewRecorder(),
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		cacheTTL:   defaultCacheTTL,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	c.exec = request.New(request.Config{
		BaseURL:        c.baseURL,
		HTTPClient:     c.http,
		Tokens:         c.tokens,
		OnUnauthorized: c.onUnauthorized,
		History:        c.history,
		Breaker:        c.breaker,
	})
	return c
}

// Close releases idle transport connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

func (c *Client) invalidate(keys ...string) {
	for _, k := range keys {
		c.cache.Invalidate(k)
		cacheInvalidationsTotal.WithLabelValues(k).Inc()
	}
}

// --------------------------------------------------------------------
// Organization operations - delegated to internal/api
// --------------------------------------------------------------------

// ListOrganizations returns all organizations, served from the cache within
// the TTL.
func (c *Client) ListOrganizations(ctx context.Context) ([]Organization, error) {
	return rescache.GetOrCompute(ctx, c.cache, rescache.KeyOrganizations, c.cacheTTL, func(ctx context.Context) ([]Organization, error) {
		return api.ListOrganizations(ctx, c.exec, c.maxRetries, c.retryDelay)
	})
}

// GetOrganization retrieves one organization by id.
func (c *Client) GetOrganization(ctx context.Context, orgID string) (*Organization, error) {
	return api.GetOrganization(ctx, c.exec, orgID)
}

// CreateOrganization creates an organization and invalidates the cached
// organization list so the next read reflects it.
func (c *Client) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*Organization, error) {
	org, err := api.CreateOrganization(ctx, c.exec, req)
	if err != nil {
		return nil, err
	}
	c.invalidate(rescache.KeyOrganizations)
	return org, nil
}

// DeleteOrganization removes an organization and invalidates the cached
// organization list.
func (c *Client) DeleteOrganization(ctx context.Context, orgID string) error {
	if err := api.DeleteOrganization(ctx, c.exec, orgID); err != nil {
		return err
	}
	c.invalidate(rescache.KeyOrganizations)
	return nil
}

// --------------------------------------------------------------------
// Assessment operations - delegated to internal/api
// --------------------------------------------------------------------

// ListAssessments returns assessments. Only the unfiltered call is cached;
// any filtered call bypasses the cache entirely.
func (c *Client) ListAssessments(ctx context.Context, filter *AssessmentFilter) ([]Assessment, error) {
	if filter != nil {
		return api.ListAssessments(ctx, c.exec, filter, c.maxRetries, c.retryDelay)
	}
	return rescache.GetOrCompute(ctx, c.cache, rescache.KeyAssessments, c.cacheTTL, func(ctx context.Context) ([]Assessment, error) {
		return api.ListAssessments(ctx, c.exec, nil, c.maxRetries, c.retryDelay)
	})
}

// GetAssessment retrieves one assessment by id.
func (c *Client) GetAssessment(ctx context.Context, assessmentID string) (*Assessment, error) {
	return api.GetAssessment(ctx, c.exec, assessmentID)
}

// CreateAssessment creates an assessment and invalidates the cached
// assessment list.
func (c *Client) CreateAssessment(ctx context.Context, req CreateAssessmentRequest) (*Assessment, error) {
	a, err := api.CreateAssessment(ctx, c.exec, req)
	if err != nil {
		return nil, err
	}
	c.invalidate(rescache.KeyAssessments)
	return a, nil
}

// UpdateAssessment applies a partial update and invalidates the cached
// assessment list and the assessment's summary.
func (c *Client) UpdateAssessment(ctx context.Context, assessmentID string, req UpdateAssessmentRequest) (*Assessment, error) {
	a, err := api.UpdateAssessment(ctx, c.exec, assessmentID, req)
	if err != nil {
		return nil, err
	}
	c.invalidate(rescache.KeyAssessments, rescache.AssessmentSummaryKey(assessmentID))
	return a, nil
}

// DeleteAssessment removes an assessment and invalidates the cached
// assessment list and the assessment's summary.
func (c *Client) DeleteAssessment(ctx context.Context, assessmentID string) error {
	if err := api.DeleteAssessment(ctx, c.exec, assessmentID); err != nil {
		return err
	}
	c.invalidate(rescache.KeyAssessments, rescache.AssessmentSummaryKey(assessmentID))
	return nil
}

// --------------------------------------------------------------------
// Summary and report operations
// --------------------------------------------------------------------

// GetAssessmentSummary returns the aggregate view for one assessment, cached
// per assessment id.
func (c *Client) GetAssessmentSummary(ctx context.Context, assessmentID string) (*AssessmentSummary, error) {
	key := rescache.AssessmentSummaryKey(assessmentID)
	return rescache.GetOrCompute(ctx, c.cache, key, c.cacheTTL, func(ctx context.Context) (*AssessmentSummary, error) {
		return api.GetAssessmentSummary(ctx, c.exec, assessmentID, c.maxRetries, c.retryDelay)
	})
}

// DownloadReport fetches the rendered report as raw bytes, bypassing JSON
// decoding. Never cached.
func (c *Client) DownloadReport(ctx context.Context, assessmentID string) ([]byte, error) {
	return api.DownloadReport(ctx, c.exec, assessmentID)
}

// --------------------------------------------------------------------
// Prefetch
// --------------------------------------------------------------------

// PrefetchAssessments warms the assessment list cache in a detached
// goroutine. Failures are deliberately discarded: a prefetch is an
// optimistic background load and its error must never reach a caller.
func (c *Client) PrefetchAssessments(ctx context.Context) {
	go c.warmAssessments(ctx)
}

func (c *Client) warmAssessments(ctx context.Context) {
	if _, err := c.ListAssessments(ctx, nil); err != nil {
		prefetchFailuresTotal.Inc()
	}
}

// --------------------------------------------------------------------
// Call history - delegated to internal/history
// --------------------------------------------------------------------

// History returns the recorded request outcomes, most recent first, capped
// at history.Capacity entries.
func (c *Client) History() []HistoryEntry {
	return c.history.Snapshot()
}

// SubscribeHistory registers a listener notified synchronously after every
// recorded call. It returns the matching unsubscribe function.
func (c *Client) SubscribeHistory(fn func([]HistoryEntry)) func() {
	return c.history.Subscribe(fn)
}
