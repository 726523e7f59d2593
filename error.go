package dashmcp

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID     = "invalid"     // validation failed, no network call made
	ENOTFOUND    = "not_found"   // entity does not exist
	EFORBIDDEN   = "forbidden"   // upstream refused access
	EUNAVAILABLE = "unavailable" // Dash unreachable, API server disabled
	EINTERNAL    = "internal"    // anything unexpected
)

// Error represents an application error. Application errors carry a
// machine-readable code and a human-readable message suitable for
// returning directly to the agent.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is an actionable, human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("dashmcp error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the
// empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "An internal error has occurred."
}

// Errorf is a helper to construct an Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
