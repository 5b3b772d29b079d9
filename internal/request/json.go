package request

import (
	"context"
	"encoding/json"
	"time"

	"github.com/praxishq/praxis-client/internal/apierr"
)

// JSON executes the call and decodes the response body into T.
func JSON[T any](ctx context.Context, e *Executor, c Call) (T, error) {
	var out T
	body, err := e.Do(ctx, c)
	if err != nil {
		return out, err
	}
	return decode[T](body)
}

// JSONWithRetry is JSON over DoWithRetry, for read endpoints that opt in to
// transient-failure retry.
func JSONWithRetry[T any](ctx context.Context, e *Executor, c Call, maxRetries int, delay time.Duration) (T, error) {
	var out T
	body, err := e.DoWithRetry(ctx, c, maxRetries, delay)
	if err != nil {
		return out, err
	}
	return decode[T](body)
}

func decode[T any](body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return out, &apierr.Error{Kind: apierr.KindUnknown, Message: "Request failed", Detail: err.Error()}
	}
	return out, nil
}
