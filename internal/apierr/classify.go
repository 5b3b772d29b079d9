package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
)

// maxRawDetail bounds how much of an unparseable error body is kept.
const maxRawDetail = 200

// corsSignatures are substrings of transport error messages that indicate a
// cross-origin rejection rather than a plain connectivity failure. The match
// is best-effort; an inconclusive message falls back to KindNetwork.
var corsSignatures = []string{"Failed to fetch", "CORS", "NetworkError"}

// FromTransport classifies an error returned by the HTTP transport, i.e. a
// failure where no response was received. It never panics.
func FromTransport(err error) *Error {
	if err == nil {
		return &Error{Kind: KindUnknown, Message: "Request failed"}
	}
	detail := err.Error()

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: KindTimeout, Message: "Request timed out, try again", Detail: detail}
	}
	for _, sig := range corsSignatures {
		if strings.Contains(detail, sig) {
			return &Error{Kind: KindCORS, Message: "Request blocked, possibly CORS", Detail: detail}
		}
	}
	return &Error{Kind: KindNetwork, Message: "Service unreachable, check connection", Detail: detail}
}

// FromResponse classifies a non-2xx response. The body is decoded against the
// known backend error shapes in priority order: the nested
// {"error":{"message"|"detail","request_id"}} form, then the flat
// {"detail"|"message","request_id"} form, then a raw-text fallback capped at
// maxRawDetail bytes.
func FromResponse(status int, body []byte) *Error {
	if status == http.StatusUnauthorized {
		// Fixed message regardless of body content.
		return &Error{Kind: KindHTTP, Status: status, Message: "Authentication required"}
	}

	msg, requestID, detail := decodeErrorBody(body)
	switch {
	case status == http.StatusForbidden:
		msg = "Access denied: " + msg
	case status == http.StatusNotFound:
		msg = "Not found: " + msg
	case status >= 500:
		msg = "Server error: " + msg
	}
	return &Error{Kind: KindHTTP, Status: status, Message: msg, RequestID: requestID, Detail: detail}
}

// nestedErrorBody is the {"error":{...}} wire shape.
type nestedErrorBody struct {
	Error *struct {
		Message   string `json:"message"`
		Detail    string `json:"detail"`
		RequestID string `json:"request_id"`
	} `json:"error"`
	// Flat fields, consulted when the nested object is absent or empty.
	Detail    string `json:"detail"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func decodeErrorBody(body []byte) (msg, requestID, detail string) {
	msg = "Request failed"
	if len(body) == 0 {
		return msg, "", ""
	}

	var wire nestedErrorBody
	if err := json.Unmarshal(body, &wire); err != nil {
		raw := body
		if len(raw) > maxRawDetail {
			raw = raw[:maxRawDetail]
		}
		return msg, "", string(raw)
	}

	if wire.Error != nil {
		requestID = wire.Error.RequestID
		if wire.Error.Message != "" {
			return wire.Error.Message, requestID, ""
		}
		if wire.Error.Detail != "" {
			return wire.Error.Detail, requestID, ""
		}
	}
	if wire.RequestID != "" {
		requestID = wire.RequestID
	}
	if wire.Detail != "" {
		return wire.Detail, requestID, ""
	}
	if wire.Message != "" {
		return wire.Message, requestID, ""
	}
	return msg, requestID, ""
}
