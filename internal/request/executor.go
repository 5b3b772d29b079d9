// Package request implements the single execution path every backend call
// takes: base-URL resolution, auth header injection, transport, error
// classification, history recording and the session-expiry hook. Layers above
// it (retry, cache, endpoint bindings) propagate its typed errors unchanged.
package request

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/praxishq/praxis-client/internal/apierr"
	"github.com/praxishq/praxis-client/internal/history"
)

// TokenProvider returns the current auth token, or "" when the caller is
// unauthenticated. Absence of a token is not an error; the request proceeds
// without an Authorization header and the backend decides.
type TokenProvider func(ctx context.Context) (string, error)

// UnauthorizedHandler is invoked exactly once per 401 response. Owned by the
// navigation layer; the executor only holds a reference.
type UnauthorizedHandler func()

// Call describes one backend request. Ephemeral; built per call.
type Call struct {
	Method   string // defaults to GET
	Path     string // relative, concatenated onto the base URL
	Endpoint string // logical name used for history, metrics and the breaker
	Body     []byte // already-serialized JSON, nil for body-less calls
	Header   http.Header
}

func (c Call) method() string {
	if c.Method == "" {
		return http.MethodGet
	}
	return c.Method
}

// Config carries the executor's collaborators, injected once at construction.
type Config struct {
	BaseURL        string
	HTTPClient     *http.Client
	Tokens         TokenProvider
	OnUnauthorized UnauthorizedHandler
	History        *history.Recorder
	Logger         *zerolog.Logger
	Breaker        *BreakerConfig
}

// Executor performs one HTTP call per invocation and records one history
// entry per invocation, success or failure.
type Executor struct {
	baseURL        string
	http           *http.Client
	tokens         TokenProvider
	onUnauthorized UnauthorizedHandler
	history        *history.Recorder
	log            zerolog.Logger
	breakers       *breakerSet
}

func New(cfg Config) *Executor {
	e := &Executor{
		baseURL:        cfg.BaseURL,
		http:           cfg.HTTPClient,
		tokens:         cfg.Tokens,
		onUnauthorized: cfg.OnUnauthorized,
		history:        cfg.History,
		log:            log.Logger,
	}
	if e.http == nil {
		e.http = &http.Client{Timeout: 30 * time.Second}
	}
	if e.history == nil {
		e.history = history.NewRecorder()
	}
	if cfg.Logger != nil {
		e.log = *cfg.Logger
	}
	if cfg.Breaker != nil {
		e.breakers = newBreakerSet(*cfg.Breaker)
	}
	return e
}

// History exposes the recorder for the diagnostic panel.
func (e *Executor) History() *history.Recorder { return e.history }

// Do executes the call and returns the raw response body. Any failure is a
// *apierr.Error; see JSON for decoded variants.
func (e *Executor) Do(ctx context.Context, c Call) ([]byte, error) {
	if e.breakers == nil {
		return e.do(ctx, c)
	}
	return e.breakers.execute(c.Endpoint, func() ([]byte, error) {
		return e.do(ctx, c)
	})
}

func (e *Executor) do(ctx context.Context, c Call) ([]byte, error) {
	start := time.Now()
	url := e.baseURL + c.Path

	var rd io.Reader
	if len(c.Body) > 0 {
		rd = bytes.NewReader(c.Body)
	}
	req, err := http.NewRequestWithContext(ctx, c.method(), url, rd)
	if err != nil {
		aerr := &apierr.Error{Kind: apierr.KindUnknown, Message: "Request failed", Detail: err.Error()}
		e.record(c, 0, history.StatusError, start, "", aerr.Message)
		requestsTotal.WithLabelValues(c.Endpoint, outcomeError).Inc()
		return nil, aerr
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range c.Header {
		req.Header[k] = vs
	}
	if e.tokens != nil {
		token, terr := e.tokens(ctx)
		switch {
		case terr != nil:
			e.log.Warn().Err(terr).Str("endpoint", c.Endpoint).Msg("token provider failed, sending unauthenticated request")
		case token != "":
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := e.http.Do(req)
	if err != nil {
		aerr := apierr.FromTransport(err)
		e.record(c, 0, history.StatusError, start, "", aerr.Message)
		requestsTotal.WithLabelValues(c.Endpoint, outcomeError).Inc()
		e.log.Debug().Err(err).Str("endpoint", c.Endpoint).Str("kind", string(aerr.Kind)).Msg("transport failure")
		return nil, aerr
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		aerr := apierr.FromTransport(err)
		e.record(c, 0, history.StatusError, start, "", aerr.Message)
		requestsTotal.WithLabelValues(c.Endpoint, outcomeError).Inc()
		return nil, aerr
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if e.onUnauthorized != nil {
			e.onUnauthorized()
		}
		unauthorizedTotal.Inc()
		aerr := apierr.FromResponse(resp.StatusCode, body)
		e.record(c, resp.StatusCode, http.StatusText(resp.StatusCode), start, aerr.RequestID, aerr.Message)
		requestsTotal.WithLabelValues(c.Endpoint, outcomeError).Inc()
		return nil, aerr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		aerr := apierr.FromResponse(resp.StatusCode, body)
		e.record(c, resp.StatusCode, http.StatusText(resp.StatusCode), start, aerr.RequestID, aerr.Message)
		requestsTotal.WithLabelValues(c.Endpoint, outcomeError).Inc()
		return nil, aerr
	}

	e.record(c, resp.StatusCode, http.StatusText(resp.StatusCode), start, resp.Header.Get("X-Request-Id"), "")
	requestsTotal.WithLabelValues(c.Endpoint, outcomeSuccess).Inc()
	return body, nil
}

func (e *Executor) record(c Call, status int, statusText string, start time.Time, requestID, errMsg string) {
	e.history.Record(history.Entry{
		Method:       c.method(),
		Endpoint:     c.Endpoint,
		Status:       status,
		StatusText:   statusText,
		DurationMs:   time.Since(start).Milliseconds(),
		RequestID:    requestID,
		ErrorMessage: errMsg,
	})
}
