// ================== pkg/errors/errors.go =================
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
	KindServiceUnavailable
	KindBadGateway
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindBadGateway:
		return "bad_gateway"
	default:
		return "internal"
	}
}

// Error is a classified application error with a stable message
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on kind and code so wrapped copies of a sentinel still compare equal
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// New creates a classified error
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap attaches a cause to a classified error
func Wrap(kind Kind, code, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

// KindOf returns the kind of the first classified error in the chain
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// As re-exports errors.As so callers don't need two errors imports
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is re-exports errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Generic sentinels
var (
	ErrNotFound     = New(KindNotFound, "NOT_FOUND", "resource not found")
	ErrUnauthorized = New(KindUnauthorized, "UNAUTHORIZED", "Unauthorized")
	ErrBadRequest   = New(KindValidation, "BAD_REQUEST", "bad request")
	ErrInternal     = New(KindInternal, "INTERNAL_ERROR", "internal server error")
	ErrValidation   = New(KindValidation, "VALIDATION_FAILED", "validation failed")
)

// Account sentinels. Messages are part of the API contract.
var (
	ErrEmailTaken         = New(KindConflict, "EMAIL_TAKEN", "User with this email already exists")
	ErrInvalidCredentials = New(KindUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrEmailInUse         = New(KindConflict, "EMAIL_IN_USE", "Email is already in use")
	ErrUserNotFound       = New(KindNotFound, "USER_NOT_FOUND", "User not found")
	ErrIncorrectPassword  = New(KindUnauthorized, "INCORRECT_PASSWORD", "Current password is incorrect")
	ErrModuleNotFound     = New(KindNotFound, "MODULE_NOT_FOUND", "Module not found")
)

// Recommendation sentinels
var (
	ErrInvalidScore       = New(KindValidation, "INVALID_SCORE", "Score must be between 0 and 1")
	ErrRecommenderDown    = New(KindServiceUnavailable, "RECOMMENDER_UNAVAILABLE", "Recommendation service is unavailable")
	ErrRecommenderRequest = New(KindValidation, "RECOMMENDER_BAD_REQUEST", "Recommendation request was rejected")
	ErrRecommenderFailed  = New(KindBadGateway, "RECOMMENDER_FAILED", "Recommendation service returned an error")
)
