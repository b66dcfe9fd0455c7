package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeoutExceeded is returned when graceful timeout period exceeds.
	ErrTimeoutExceeded = New("Timeout exceeded")
	// ErrInvalidEnvironemt is returned when the env is incorrect.
	ErrInvalidEnvironemt = New("Invalid Environment")
	// ErrInvalidQueuePayload is returned when a queue message cannot be decoded.
	ErrInvalidQueuePayload = New("Invalid Queue Payload")
	// GenericErrorMessage is generic error message returned to callers
	GenericErrorMessage = New("Unexpected error. Please try again later.")
	// ErrTypeAssertionFailed is returned when type assertion fails for a var
	ErrTypeAssertionFailed = New("type assertion failed")
	// ErrMarshalJSON is returned when json marshal failed
	ErrMarshalJSON = New("JSON marshal failed")
	// ErrUnMarshalJSON is returned when json unmarshal failed
	ErrUnMarshalJSON = New("JSON unmarshal failed")
)

// Error represents a json-encoded API error.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a new error message.
func New(text string) error {
	return &Error{Message: text}
}

// causeError carries a stable sentinel together with the underlying failure.
type causeError struct {
	sentinel error
	cause    error
}

// WithCause attaches cause to sentinel. The returned error prints the sentinel's
// message, matches the sentinel through errors.Is and unwraps to the cause.
func WithCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &causeError{sentinel: sentinel, cause: cause}
}

func (e *causeError) Error() string {
	return e.sentinel.Error()
}

func (e *causeError) Is(target error) bool {
	return e.sentinel == target
}

func (e *causeError) Unwrap() error {
	return e.cause
}

// Format prints the cause after the message for %v, so logs keep the detail
// that Error hides from callers.
func (e *causeError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		fmt.Fprintf(s, "%s: %v", e.sentinel.Error(), e.cause)
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		fmt.Fprint(s, e.Error())
	}
}

// Cause returns the underlying failure attached with WithCause, or nil.
func Cause(err error) error {
	var ce *causeError
	if errors.As(err, &ce) {
		return ce.cause
	}
	return nil
}
