package liam

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeError(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    Kind
		message string
	}{
		{
			name:    "google envelope",
			status:  http.StatusNotFound,
			body:    `{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`,
			kind:    KindNotFound,
			message: "Requested entity was not found.",
		},
		{
			name:    "flat message",
			status:  http.StatusInternalServerError,
			body:    `{"message":"temporary failure"}`,
			kind:    KindBackendError,
			message: "temporary failure",
		},
		{
			name:    "empty body falls back to status text",
			status:  http.StatusServiceUnavailable,
			body:    "",
			kind:    KindBackendError,
			message: "Service Unavailable",
		},
		{
			name:    "forbidden maps to unauthorized",
			status:  http.StatusForbidden,
			body:    `{"error":{"code":403,"message":"insufficient scope"}}`,
			kind:    KindUnauthorized,
			message: "insufficient scope",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := decodeError(tc.status, []byte(tc.body))
			assert.Equal(t, tc.kind, err.Kind)
			assert.Equal(t, tc.message, err.Message)
		})
	}
}

func TestRedact(t *testing.T) {
	cases := []struct {
		in       string
		token    string
		expected string
	}{
		{
			in:       "request failed with Bearer eyJhbGciOiJIUzI1NiJ9.abc.def",
			token:    "",
			expected: "request failed with Bearer [redacted]",
		},
		{
			in:       "token tok-secret rejected",
			token:    "tok-secret",
			expected: "token [redacted] rejected",
		},
		{
			in:       "bearer s3cret also lowercased",
			token:    "",
			expected: "Bearer [redacted] also lowercased",
		},
		{
			in:       "no credentials here",
			token:    "tok-secret",
			expected: "no credentials here",
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			assert.Equal(t, tc.expected, redact(tc.in, tc.token))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(&Error{Kind: KindNotFound, Message: "gone"}))
	assert.Equal(t, KindInvalidParameter, KindOf(fmt.Errorf("wrapped: %w", InvalidParameter("bad"))))
	assert.Equal(t, Kind(""), KindOf(fmt.Errorf("plain error")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestErrorString(t *testing.T) {
	err := InvalidParameter("%s must not be empty", "message_id")
	assert.Equal(t, "invalid_parameter: message_id must not be empty", err.Error())
}
