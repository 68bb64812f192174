package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeInvalid        ErrorCode = "INVALID"
	ErrCodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal       ErrorCode = "INTERNAL"
	ErrCodeUnavailable    ErrorCode = "UNAVAILABLE"
	ErrCodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// View-level failures surfaced to the user as notifications.
	ErrCodeFetchFailed  ErrorCode = "FETCH_FAILED"
	ErrCodeUpdateFailed ErrorCode = "UPDATE_FAILED"
	ErrCodeDeleteFailed ErrorCode = "DELETE_FAILED"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrAssignmentNotFound = NewError(ErrCodeNotFound, "assignment not found")
	ErrInvalidPayload     = NewError(ErrCodeInvalid, "invalid payload")
	ErrMissingID          = NewError(ErrCodeInvalid, "missing assignment id")
	ErrUnauthorized       = NewError(ErrCodeUnauthorized, "unauthorized")
	ErrNotImplemented     = NewError(ErrCodeNotImplemented, "not implemented yet")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// CodeOf returns the code of the outermost domain error, or ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return ErrCodeInternal
}
