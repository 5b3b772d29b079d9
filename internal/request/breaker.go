package request

import (
	"errors"
	"fmt"
	"sync"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/praxishq/praxis-client/internal/apierr"
)

// BreakerConfig enables a per-endpoint circuit breaker in front of the
// transport. Off unless configured.
type BreakerConfig struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// ConsecutiveFailures before the breaker trips.
	ConsecutiveFailures uint32
}

type breakerResult struct {
	body []byte
	err  error
}

// breakerSet holds one breaker per logical endpoint, created lazily.
type breakerSet struct {
	mu       sync.Mutex
	cfg      BreakerConfig
	breakers map[string]*gobreaker.CircuitBreaker[breakerResult]
}

func newBreakerSet(cfg BreakerConfig) *breakerSet {
	return &breakerSet{cfg: cfg, breakers: make(map[string]*gobreaker.CircuitBreaker[breakerResult])}
}

func (s *breakerSet) breaker(endpoint string) *gobreaker.CircuitBreaker[breakerResult] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cb, ok := s.breakers[endpoint]; ok {
		return cb
	}
	cb := gobreaker.NewCircuitBreaker[breakerResult](gobreaker.Settings{
		Name:        fmt.Sprintf("praxis endpoint %s", endpoint),
		MaxRequests: s.cfg.MaxRequests,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > s.cfg.ConsecutiveFailures
		},
	})
	s.breakers[endpoint] = cb
	return cb
}

// execute runs fn under the endpoint's breaker. Only transient-class failures
// count against the breaker; 4xx responses pass through without tripping it.
func (s *breakerSet) execute(endpoint string, fn func() ([]byte, error)) ([]byte, error) {
	cb := s.breaker(endpoint)
	res, err := cb.Execute(func() (breakerResult, error) {
		body, err := fn()
		if err != nil && apierr.IsRetryable(err) {
			return breakerResult{}, err
		}
		return breakerResult{body: body, err: err}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			breakerOpenTotal.WithLabelValues(endpoint).Inc()
			return nil, &apierr.Error{
				Kind:    apierr.KindNetwork,
				Message: "Service temporarily unavailable",
				Detail:  err.Error(),
			}
		}
		return nil, err
	}
	return res.body, res.err
}
