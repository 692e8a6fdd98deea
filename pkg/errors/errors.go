package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	// ErrorTypeNotFound: a lookup (detail id, stored key) resolved to nothing.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
	// ErrorTypeBadRequest: caller supplied an unusable parameter.
	ErrorTypeBadRequest ErrorType = "BAD_REQUEST"
	// ErrorTypeUnavailable: the catalog resource could not be fetched or parsed.
	ErrorTypeUnavailable ErrorType = "UNAVAILABLE"
	// ErrorTypeInternal: anything else.
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(errorType ErrorType, message string) error {
	return &AppError{Type: errorType, Message: message}
}

func Wrap(errorType ErrorType, message string, err error) error {
	return &AppError{Type: errorType, Message: message, Err: err}
}

func NotFound(message string) error {
	return New(ErrorTypeNotFound, message)
}

func BadRequest(message string) error {
	return New(ErrorTypeBadRequest, message)
}

// Unavailable wraps a load failure of the catalog resource.
func Unavailable(message string, err error) error {
	return Wrap(ErrorTypeUnavailable, message, err)
}

func Internal(message string, err error) error {
	return Wrap(ErrorTypeInternal, message, err)
}

// TypeOf returns the ErrorType of the first AppError in err's chain, or "".
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

func IsBadRequest(err error) bool {
	return TypeOf(err) == ErrorTypeBadRequest
}

func IsUnavailable(err error) bool {
	return TypeOf(err) == ErrorTypeUnavailable
}

func IsInternal(err error) bool {
	return TypeOf(err) == ErrorTypeInternal
}
