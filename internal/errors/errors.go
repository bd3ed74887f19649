// Package errors defines stable error codes for rootfind's CLI surface.
//
// Resolution itself never returns errors: filesystem faults during root
// detection are absorbed into the case dispatch (unresolvable paths are
// excluded, unreadable marker directories count as marker-free). The codes
// here cover the boundary where a hard failure is the right answer —
// configuration loading and input handling.
package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ConfigInvalid indicates the configuration file could not be parsed or validated
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// NoInput indicates no files or directory were supplied
	NoInput ErrorCode = "NO_INPUT"
	// TraversalFailed indicates a directory traversal could not start or was cancelled
	TraversalFailed ErrorCode = "TRAVERSAL_FAILED"
	// OutputFailed indicates results could not be encoded or written
	OutputFailed ErrorCode = "OUTPUT_FAILED"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// RfError represents a rootfind error with a stable code and message
type RfError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new RfError
func New(code ErrorCode, message string, cause error) *RfError {
	return &RfError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *RfError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *RfError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *RfError) WithDetails(details interface{}) *RfError {
	e.Details = details
	return e
}
