package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for loader errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_MISSING_SETTING   ErrorCode = "CONFIG_MISSING_SETTING"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// CSV source error codes
const (
	SOURCE_OPEN_FAILED    ErrorCode = "SOURCE_OPEN_FAILED"
	SOURCE_MISSING_COLUMN ErrorCode = "SOURCE_MISSING_COLUMN"
	SOURCE_READ_FAILED    ErrorCode = "SOURCE_READ_FAILED"
)

// Row data error codes
const (
	DATA_COERCION_FAILED ErrorCode = "DATA_COERCION_FAILED"
	DATA_MALFORMED_ROW   ErrorCode = "DATA_MALFORMED_ROW"
)

// Graph store error codes
const (
	GRAPH_INVALID_CONFIG       ErrorCode = "GRAPH_INVALID_CONFIG"
	GRAPH_AUTH_FAILED          ErrorCode = "GRAPH_AUTH_FAILED"
	GRAPH_NOT_CONNECTED        ErrorCode = "GRAPH_NOT_CONNECTED"
	GRAPH_CONNECTION_FAILED    ErrorCode = "GRAPH_CONNECTION_FAILED"
	GRAPH_UNAVAILABLE          ErrorCode = "GRAPH_UNAVAILABLE"
	GRAPH_WRITE_FAILED         ErrorCode = "GRAPH_WRITE_FAILED"
	GRAPH_CONSTRAINT_VIOLATION ErrorCode = "GRAPH_CONSTRAINT_VIOLATION"
	GRAPH_ENDPOINT_MISSING     ErrorCode = "GRAPH_ENDPOINT_MISSING"
)

// Run orchestration error codes
const (
	RUN_RETRIES_EXHAUSTED ErrorCode = "RUN_RETRIES_EXHAUSTED"
	RUN_CANCELLED         ErrorCode = "RUN_CANCELLED"
)

// ETLError represents a structured error with error code, message, and optional cause.
// It supports error wrapping and retryability hints for error handling logic.
type ETLError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *ETLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
// This enables using errors.Is() and errors.As() with wrapped errors.
func (e *ETLError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is an ETLError with the same Code.
func (e *ETLError) Is(target error) bool {
	var etlErr *ETLError
	if errors.As(target, &etlErr) {
		return e.Code == etlErr.Code
	}
	return false
}

// NewError creates a new non-retryable ETLError with the given code and message.
func NewError(code ErrorCode, message string) *ETLError {
	return &ETLError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     nil,
	}
}

// NewRetryableError creates a new retryable ETLError with the given code and message.
// Use this for transient store errors that may succeed on a later attempt.
func NewRetryableError(code ErrorCode, message string) *ETLError {
	return &ETLError{
		Code:      code,
		Message:   message,
		Retryable: true,
		Cause:     nil,
	}
}

// WrapError creates a new non-retryable ETLError that wraps an existing error.
// The wrapped error is accessible via Unwrap() for error chain inspection.
func WrapError(code ErrorCode, message string, cause error) *ETLError {
	return &ETLError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     cause,
	}
}

// WrapRetryableError creates a new retryable ETLError that wraps an existing error.
func WrapRetryableError(code ErrorCode, message string, cause error) *ETLError {
	return &ETLError{
		Code:      code,
		Message:   message,
		Retryable: true,
		Cause:     cause,
	}
}

// IsRetryable reports whether any error in the chain is a retryable ETLError.
func IsRetryable(err error) bool {
	var etlErr *ETLError
	if errors.As(err, &etlErr) {
		return etlErr.Retryable
	}
	return false
}

// CodeOf returns the error code of the first ETLError in the chain,
// or the empty code if the chain contains none.
func CodeOf(err error) ErrorCode {
	var etlErr *ETLError
	if errors.As(err, &etlErr) {
		return etlErr.Code
	}
	return ""
}
