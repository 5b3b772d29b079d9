package client

import "github.com/praxishq/praxis-client/internal/apierr"

// Error is the typed failure value raised by the request layer. Every layer
// above the executor propagates it unchanged, so callers can rely on its
// shape regardless of whether retry or caching was involved.
type Error = apierr.Error

// ErrorKind partitions failures into the classes callers dispatch on.
type ErrorKind = apierr.Kind

const (
	ErrorKindNetwork = apierr.KindNetwork
	ErrorKindCORS    = apierr.KindCORS
	ErrorKindHTTP    = apierr.KindHTTP
	ErrorKindTimeout = apierr.KindTimeout
	ErrorKindUnknown = apierr.KindUnknown
)

// AsError extracts the typed *Error from an error chain.
func AsError(err error) (*Error, bool) { return apierr.As(err) }

// IsRetryable reports whether err belongs to a transient failure class.
func IsRetryable(err error) bool { return apierr.IsRetryable(err) }
