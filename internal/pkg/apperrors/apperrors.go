package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// UnknownError is shown when the backend gave no readable error text
const UnknownError = "Unknown error"

// Status markers prefixed to user-visible messages
const (
	SuccessMark = "✅"
	FailureMark = "❌"
)

var (
	// ErrUnauthenticated is returned before any request is sent when no token is held
	ErrUnauthenticated = errors.New("no authentication token available")
	// ErrAuthExpired is returned after a 401; the session has already been torn down
	ErrAuthExpired = errors.New("authentication expired")
	// ErrSubmitInProgress is returned when a dialog is already submitting
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	// ErrNoDialog is returned when an action needs an open dialog
	ErrNoDialog = errors.New("no dialog is open")
	// ErrWrongDialog is returned when an action does not belong to the open dialog
	ErrWrongDialog = errors.New("action is not available in the open dialog")
	// ErrConfirmationRequired is returned when completing a ride without confirming first
	ErrConfirmationRequired = errors.New("ride completion must be confirmed first")
	// ErrBookingNotFound is returned when a booking is not in the current snapshot
	ErrBookingNotFound = errors.New("booking not found")
	// ErrPollerStopped is returned when the dashboard is refreshed while not polling
	ErrPollerStopped = errors.New("dashboard is not being polled")
)

// NetworkError means the request could not be sent or completed
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-2xx backend response
type HTTPError struct {
	Op         string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %d %s - %s", e.Op, e.StatusCode, e.Status, e.Message())
}

// Message returns the backend text verbatim, or UnknownError when empty
func (e *HTTPError) Message() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return UnknownError
	}
	return body
}

// RejectedError is a 2xx response whose body reports success=false
type RejectedError struct {
	Op      string
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// ValidationError is raised client-side before any network call
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNetwork reports whether err is a NetworkError
func IsNetwork(err error) bool {
	var n *NetworkError
	return errors.As(err, &n)
}

// AsHTTP extracts an HTTPError
func AsHTTP(err error) (*HTTPError, bool) {
	var h *HTTPError
	if errors.As(err, &h) {
		return h, true
	}
	return nil, false
}

// Text returns the user-facing text of an error: backend body for HTTP errors,
// the reason for validation errors and the error string otherwise.
func Text(err error) string {
	if err == nil {
		return ""
	}
	if h, ok := AsHTTP(err); ok {
		return h.Message()
	}
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Reason
	}
	var r *RejectedError
	if errors.As(err, &r) {
		if strings.TrimSpace(r.Message) == "" {
			return UnknownError
		}
		return r.Message
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return UnknownError
}

// UserMessage prefixes a status line with the success or failure marker
func UserMessage(success bool, text string) string {
	if strings.TrimSpace(text) == "" {
		text = UnknownError
	}
	if success {
		return SuccessMark + " " + text
	}
	return FailureMark + " " + text
}

// FailureMessage renders err as a failure status line
func FailureMessage(err error) string {
	return UserMessage(false, Text(err))
}

// StatusCode maps an error to the HTTP status the console answers with
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrAuthExpired):
		return http.StatusUnauthorized
	case IsValidation(err), errors.Is(err, ErrConfirmationRequired):
		return http.StatusBadRequest
	case errors.Is(err, ErrSubmitInProgress), errors.Is(err, ErrWrongDialog), errors.Is(err, ErrNoDialog), errors.Is(err, ErrPollerStopped):
		return http.StatusConflict
	case errors.Is(err, ErrBookingNotFound):
		return http.StatusNotFound
	case IsNetwork(err):
		return http.StatusBadGateway
	}
	var r *RejectedError
	if errors.As(err, &r) {
		return http.StatusUnprocessableEntity
	}
	if h, ok := AsHTTP(err); ok && h.StatusCode >= 400 && h.StatusCode < 500 {
		return h.StatusCode
	}
	return http.StatusBadGateway
}
