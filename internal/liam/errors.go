package liam

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"google.golang.org/api/googleapi"
)

// Kind classifies a gateway error.
type Kind string

// Error kinds surfaced to callers.
const (
	KindInvalidParameter   Kind = "invalid_parameter"
	KindUnauthorized       Kind = "unauthorized"
	KindNotFound           Kind = "not_found"
	KindBackendError       Kind = "backend_error"
	KindBackendUnavailable Kind = "backend_unavailable"
)

// Error is the structured error returned for every failed invocation.
// The message is already redacted; raw backend bodies never leave this
// package on error paths.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// InvalidParameter reports a schema violation detected before any backend
// call is made.
func InvalidParameter(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidParameter, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or an empty Kind for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[^\s"']+`)

// redact strips credential material from a message: any bearer value and
// the process-wide token itself.
func redact(msg, token string) string {
	msg = bearerPattern.ReplaceAllString(msg, "Bearer [redacted]")
	if token != "" {
		msg = strings.ReplaceAll(msg, token, "[redacted]")
	}
	return msg
}

// kindForStatus maps a backend HTTP status to an error kind.
func kindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindBackendError
	}
}

// decodeError turns a non-2xx backend response into a structured error.
// LIAM relays Gmail API failures in the standard Google error envelope, so
// that shape is tried first; anything else falls back to the status text.
func decodeError(status int, body []byte) *Error {
	msg := http.StatusText(status)

	var envelope struct {
		Error *googleapi.Error `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		msg = envelope.Error.Message
	} else {
		var flat struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &flat); err == nil && flat.Message != "" {
			msg = flat.Message
		}
	}

	return &Error{Kind: kindForStatus(status), Message: msg}
}
