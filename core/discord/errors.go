package discord

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxErrorBody = 512

// AuthError reports a missing or rejected credential.
// Status is zero when no request was made.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	if e.Status == 0 {
		return "auth: " + e.Message
	}
	return fmt.Sprintf("auth: %s (status %d)", e.Message, e.Status)
}

// RemoteError reports a non-success or unreadable response from the API.
// Err holds the decode failure when the status looked successful.
type RemoteError struct {
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%s failed: status %d", e.Op, e.Status)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsAuthError reports whether err is, or wraps, an *AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// StatusOf returns the HTTP status carried by err, or zero.
func StatusOf(err error) int {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Status
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Status
	}
	return 0
}

func summarizeBody(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if len(trimmed) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
			cut--
		}
		return trimmed[:cut] + "..."
	}
	return trimmed
}
