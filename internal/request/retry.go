package request

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/praxishq/praxis-client/internal/apierr"
)

// DoWithRetry re-attempts transient failures: network-class errors and HTTP
// errors with status >= 500. 4xx errors are never retried, and a 401 fires
// the unauthorized handler on its first occurrence because it is surfaced as
// a permanent error before the backoff loop can re-attempt it. Total attempts
// are maxRetries+1 with a constant delay between them; on exhaustion the last
// error is propagated unchanged.
//
// Only idempotent read endpoints opt in. Mutations must call Do directly.
func (e *Executor) DoWithRetry(ctx context.Context, c Call, maxRetries int, delay time.Duration) ([]byte, error) {
	if maxRetries <= 0 {
		return e.Do(ctx, c)
	}

	attempt := 0
	op := func() ([]byte, error) {
		if attempt > 0 {
			retriesTotal.WithLabelValues(c.Endpoint).Inc()
			e.log.Debug().Str("endpoint", c.Endpoint).Int("attempt", attempt+1).Msg("retrying request")
		}
		attempt++

		body, err := e.Do(ctx, c)
		if err != nil && !apierr.IsRetryable(err) {
			return nil, backoff.Permanent(err)
		}
		return body, err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), uint64(maxRetries)), ctx)
	return backoff.RetryWithData(op, b)
}
