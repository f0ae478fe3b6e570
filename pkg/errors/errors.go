// Package errors provides structured errors with stable codes for
// openmodules. Codes let tests and callers branch on the category of a
// failure without string matching.
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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// Module errors
	ErrModuleNotFound ErrorCode = "MODULE_NOT_FOUND"
	ErrModuleAccess   ErrorCode = "MODULE_ACCESS"

	// Trigger errors
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Index errors
	ErrIndexLoad  ErrorCode = "INDEX_LOAD"
	ErrIndexWrite ErrorCode = "INDEX_WRITE"
	ErrGitRef     ErrorCode = "GIT_REF"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// ModuleError represents a structured error with code and details
type ModuleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ModuleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ModuleError) Unwrap() error {
	return e.Wrapped
}

// Is matches two ModuleErrors by code
func (e *ModuleError) Is(target error) bool {
	var targetErr *ModuleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ModuleError with the given code and message
func New(code ErrorCode, message string) *ModuleError {
	return &ModuleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ModuleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ModuleError {
	return &ModuleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ModuleError
func Wrap(err error, code ErrorCode, message string) *ModuleError {
	if err == nil {
		return nil
	}
	return &ModuleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ModuleError {
	if err == nil {
		return nil
	}
	return &ModuleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ModuleError) WithDetail(key string, value interface{}) *ModuleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var merr *ModuleError
	if errors.As(err, &merr) {
		return merr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// the error is not a ModuleError
func GetErrorCode(err error) ErrorCode {
	var merr *ModuleError
	if errors.As(err, &merr) {
		return merr.Code
	}
	return ErrUnknown
}
