// Package errors provides coded errors for the weaver command and solver.
// A WeaverError carries a stable ErrorCode so callers and tests can match
// on the category without parsing messages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Word validation errors
	ErrWordLength  ErrorCode = "WORD_LENGTH"
	ErrUnknownWord ErrorCode = "UNKNOWN_WORD"

	// Dictionary and graph errors
	ErrDictionaryLoad ErrorCode = "DICTIONARY_LOAD"
	ErrGraphBuild     ErrorCode = "GRAPH_BUILD"
	ErrSearch         ErrorCode = "SEARCH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// WeaverError represents a structured error with code and details
type WeaverError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WeaverError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WeaverError) Unwrap() error {
	return e.Wrapped
}

// Is matches any *WeaverError with the same code
func (e *WeaverError) Is(target error) bool {
	var targetErr *WeaverError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WeaverError with the given code and message
func New(code ErrorCode, message string) *WeaverError {
	return &WeaverError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WeaverError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WeaverError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a WeaverError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *WeaverError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WeaverError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *WeaverError) WithDetail(key string, value interface{}) *WeaverError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var weaverErr *WeaverError
	if errors.As(err, &weaverErr) {
		return weaverErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WeaverError
func GetErrorCode(err error) ErrorCode {
	var weaverErr *WeaverError
	if errors.As(err, &weaverErr) {
		return weaverErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WeaverError
func GetErrorDetails(err error) map[string]interface{} {
	var weaverErr *WeaverError
	if errors.As(err, &weaverErr) {
		return weaverErr.Details
	}
	return nil
}

// UserMessage returns the message meant for the terminal: the outermost
// WeaverError's Message without code or wrapped cause, or err.Error()
// for foreign errors.
func UserMessage(err error) string {
	var weaverErr *WeaverError
	if errors.As(err, &weaverErr) {
		return weaverErr.Message
	}
	return err.Error()
}

// IsUserError reports whether err stems from bad input rather than a
// failure of the program itself.
func IsUserError(err error) bool {
	switch GetErrorCode(err) {
	case ErrInvalidInput, ErrWordLength, ErrUnknownWord, ErrConfigValid:
		return true
	}
	return false
}
