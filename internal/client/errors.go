// Package client implements the typed boundary to the remote hotel-booking
// service.  It owns transport concerns only: bearer authentication, the
// response envelope, and the mapping of failures to error kinds.  These
// sentinel values allow higher layers to distinguish failure scenarios with
// errors.Is, e.g. ErrConflict for a remote invariant violation or
// ErrUnauthenticated for a missing or rejected token.
package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrValidation marks input rejected locally before any remote call was
// made, such as a non-positive surge factor or an inverted date range.
var ErrValidation = errors.New("validation")

// ErrUnauthenticated is returned when no token is present or the remote
// service rejected the token.  The session is cleared when this happens.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden is returned when the caller is authenticated but lacks the
// role required for the operation.  Handlers translate this into 403.
var ErrForbidden = errors.New("forbidden")

// ErrNotFound is returned when the addressed resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict signals that the remote service refused the operation
// because of conflicting state, such as an inventory overbooking or a
// booking status that does not permit the requested action.  Handlers
// translate this into 409.
var ErrConflict = errors.New("conflict")

// ErrRemoteUnavailable covers transport failures, malformed response
// bodies and remote 5xx responses.
var ErrRemoteUnavailable = errors.New("remote unavailable")

// Error is the concrete failure type returned by every operation in this
// package.  It wraps one of the sentinel kinds above, so callers can use
// errors.Is, while preserving the remote message verbatim.
type Error struct {
	kind    error
	Status  int    // HTTP status of the remote response, 0 for local errors
	Message string // remote message, or a local description
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the sentinel kind for errors.Is comparisons.
func (e *Error) Unwrap() error { return e.kind }

// NewValidationError builds a locally-detected input error.  No remote
// call is associated with it.
func NewValidationError(format string, args ...any) *Error {
	return &Error{kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NewConflictError builds a state-conflict error raised before dispatch,
// e.g. an action that the booking's current status does not permit.
func NewConflictError(format string, args ...any) *Error {
	return &Error{kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// NewUnauthenticatedError marks a call rejected locally because no
// session token is present; no network round trip is made.
func NewUnauthenticatedError() *Error {
	return &Error{kind: ErrUnauthenticated, Message: "not authenticated"}
}

func newTransportError(err error) *Error {
	return &Error{kind: ErrRemoteUnavailable, Message: err.Error()}
}

// newStatusError classifies a non-2xx remote response.  Recognized
// statuses map onto their dedicated kinds; any other 4xx is treated as a
// remote rejection (Conflict) with the message preserved, and 5xx as the
// service being unavailable.
func newStatusError(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	var kind error
	switch {
	case status == http.StatusUnauthorized:
		kind = ErrUnauthenticated
	case status == http.StatusForbidden:
		kind = ErrForbidden
	case status == http.StatusNotFound:
		kind = ErrNotFound
	case status == http.StatusConflict:
		kind = ErrConflict
	case status >= 500:
		kind = ErrRemoteUnavailable
	default:
		kind = ErrConflict
	}
	return &Error{kind: kind, Status: status, Message: message}
}
