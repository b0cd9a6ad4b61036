package lnpulse

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies API failures by HTTP status.
type Kind int

const (
	// KindBadRequest indicates a malformed request (400).
	KindBadRequest Kind = iota
	// KindUnauthorized indicates a missing or invalid credential (401).
	KindUnauthorized
	// KindForbidden indicates the credential lacks permission (403).
	KindForbidden
	// KindNotFound indicates the resource does not exist (404).
	KindNotFound
	// KindConflict indicates a conflict with the current resource state (409).
	KindConflict
	// KindGeneric covers every other non-2xx status.
	KindGeneric
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "generic"
	}
}

// fallbackMessage is the label used when the response body yields nothing
// human-readable.
func (k Kind) fallbackMessage() string {
	switch k {
	case KindBadRequest:
		return "Bad Request"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "Not Found"
	case KindConflict:
		return "Conflict"
	default:
		return ""
	}
}

// Error is a classified, immutable API failure. Body always preserves the
// raw response body verbatim for diagnostics, whatever its shape.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// StatusCode is the HTTP status of the failing response.
	StatusCode int
	// Body is the raw response body.
	Body string
	// Message is a human-readable description, extracted from the body
	// when possible.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("lnpulse: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
}

// Classify converts a non-2xx response into a typed error.
// Returns nil for 2xx status codes.
func Classify(statusCode int, body []byte) *Error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	var kind Kind
	switch statusCode {
	case http.StatusBadRequest:
		kind = KindBadRequest
	case http.StatusUnauthorized:
		kind = KindUnauthorized
	case http.StatusForbidden:
		kind = KindForbidden
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusConflict:
		kind = KindConflict
	default:
		kind = KindGeneric
	}

	fallback := kind.fallbackMessage()
	if fallback == "" {
		fallback = http.StatusText(statusCode)
		if fallback == "" {
			fallback = fmt.Sprintf("HTTP %d", statusCode)
		}
	}

	return &Error{
		Kind:       kind,
		StatusCode: statusCode,
		Body:       string(body),
		Message:    extractMessage(body, fallback),
	}
}

// extractMessage pulls a human-readable message out of a JSON error body,
// preferring "message" over "error". Malformed bodies are expected from
// misbehaving intermediaries and fall back to the supplied label.
func extractMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fallback
}

// IsBadRequest checks if an error is a 400 Bad Request.
func IsBadRequest(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindBadRequest
}

// IsUnauthorized checks if an error is a 401 Unauthorized.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUnauthorized
}

// IsForbidden checks if an error is a 403 Forbidden.
func IsForbidden(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindForbidden
}

// IsNotFound checks if an error is a 404 Not Found.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// IsConflict checks if an error is a 409 Conflict.
func IsConflict(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConflict
}
