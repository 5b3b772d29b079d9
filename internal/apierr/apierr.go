// Package apierr defines the typed error surfaced by the request layer and
// the classification rules that produce it. Classification is deterministic:
// the same status and body always yield the same error shape, so callers and
// tests can compare errors structurally.
package apierr

import (
	"errors"
	"fmt"
)

// Kind partitions failures into the classes callers dispatch on.
type Kind string

const (
	// KindNetwork means no response reached the client.
	KindNetwork Kind = "network"
	// KindCORS is a network failure pattern-matched as a cross-origin rejection.
	KindCORS Kind = "cors"
	// KindHTTP means the server responded with a non-2xx status.
	KindHTTP Kind = "http"
	// KindTimeout is a transport-reported deadline or timeout.
	KindTimeout Kind = "timeout"
	// KindUnknown is the fallback when classification is inconclusive.
	KindUnknown Kind = "unknown"
)

// Error is the structured failure value raised by the request layer.
// Kind == KindHTTP implies Status > 0; network-class kinds carry Status 0.
// An Error is never mutated after creation.
type Error struct {
	Kind      Kind
	Message   string // display-ready text
	Status    int    // HTTP status, 0 when no response was received
	RequestID string // backend correlation id, when surfaced
	Detail    string // raw diagnostic text, when available
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s: %s (status %d)", e.Kind, e.Message, e.Status)
	}
	if e.RequestID != "" {
		msg = fmt.Sprintf("[%s] %s", e.RequestID, msg)
	}
	return msg
}

// As extracts a typed *Error from an error chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsRetryable reports whether err belongs to a transient class: a
// network-level failure or a server-side (>=500) HTTP error. 4xx responses,
// including 401, are never retryable.
func IsRetryable(err error) bool {
	e, ok := As(err)
	if !ok {
		return false
	}
	switch e.Kind {
	case KindNetwork, KindCORS, KindTimeout:
		return true
	case KindHTTP:
		return e.Status >= 500
	default:
		return false
	}
}
