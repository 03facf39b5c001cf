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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Build state errors
	ErrStateAccess ErrorCode = "STATE_ACCESS"

	// Output and filesystem errors
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE"
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
)

// RebarError represents a structured error with code and details
type RebarError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RebarError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RebarError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a RebarError with the same code
func (e *RebarError) Is(target error) bool {
	var targetErr *RebarError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RebarError with the given code and message
func New(code ErrorCode, message string) *RebarError {
	return &RebarError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RebarError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RebarError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a RebarError. It returns nil for a nil err.
func Wrap(err error, code ErrorCode, message string) *RebarError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RebarError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *RebarError) WithDetail(key string, value interface{}) *RebarError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rebarErr *RebarError
	if errors.As(err, &rebarErr) {
		return rebarErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RebarError
func GetErrorCode(err error) ErrorCode {
	var rebarErr *RebarError
	if errors.As(err, &rebarErr) {
		return rebarErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RebarError
func GetErrorDetails(err error) map[string]interface{} {
	var rebarErr *RebarError
	if errors.As(err, &rebarErr) {
		return rebarErr.Details
	}
	return nil
}
