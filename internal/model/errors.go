package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure a store or service surfaces to its
// caller.
type ErrorKind string

const (
	KindNetworkFailure     ErrorKind = "NETWORK_FAILURE"
	KindServerRejected     ErrorKind = "SERVER_REJECTED"
	KindValidationFailure  ErrorKind = "VALIDATION_FAILURE"
	KindInvariantViolation ErrorKind = "INVARIANT_VIOLATION"
)

// ServiceError is the uniform failure shape at the service boundary.
// Stores never let a raw transport error escape past this type.
type ServiceError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int   // HTTP status for KindServerRejected, zero otherwise
	Err        error // underlying cause, may be nil
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// NetworkFailure wraps a transport-level error (unreachable, timeout).
func NetworkFailure(err error) *ServiceError {
	return &ServiceError{Kind: KindNetworkFailure, Message: err.Error(), Err: err}
}

// ServerRejected wraps a 4xx/5xx response with its message.
func ServerRejected(status int, message string) *ServiceError {
	return &ServiceError{Kind: KindServerRejected, StatusCode: status, Message: message}
}

// ValidationFailure marks a client-side precondition failure, checked
// before any network call is issued.
func ValidationFailure(message string) *ServiceError {
	return &ServiceError{Kind: KindValidationFailure, Message: message}
}

// InvariantViolation marks an operation that would break domain state,
// such as closing an already-terminal complaint.
func InvariantViolation(message string) *ServiceError {
	return &ServiceError{Kind: KindInvariantViolation, Message: message}
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind ErrorKind) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Kind == kind
}

// Shared sentinel failures.
var (
	ErrContentRequired   = ValidationFailure("content is required")
	ErrNotAuthenticated  = ValidationFailure("no authenticated user")
	ErrPostNotFound      = ValidationFailure("post not found")
	ErrCommentNotFound   = ValidationFailure("comment not found")
	ErrComplaintNotFound = ValidationFailure("complaint not found")
	ErrComplaintTerminal = InvariantViolation("complaint is already resolved or closed")
	ErrImageTooLarge     = ValidationFailure("image exceeds the maximum upload size")
	ErrUnsupportedImage  = ValidationFailure("attachment is not an image")
)
