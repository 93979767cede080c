// Package errors provides structured error types for the stackchart engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine, sinks and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (datasets, formats, config)
//   - *_NOT_FOUND / UNKNOWN_*: Lookups that found nothing
//   - DOMAIN_ERROR: A categorical key outside a scale's domain
//   - INTERNAL_*: Unexpected internal errors
//
// Degenerate inputs (empty datasets, zero-total pies, zero-span domains) are
// not errors anywhere in the engine and never produce one of these codes.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDomain, "unknown key %q", key)
//	if errors.Is(err, errors.ErrCodeDomain) {
//	    // skip this datum, keep rendering the rest
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidDataset, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidDataset   Code = "INVALID_DATASET"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidChartType Code = "INVALID_CHART_TYPE"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"

	// Lookup errors
	ErrCodeDomain           Code = "DOMAIN_ERROR"
	ErrCodeUnknownSelection Code = "UNKNOWN_SELECTION"
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"

	// Lifecycle errors
	ErrCodeChartClosed Code = "CHART_CLOSED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// DomainError reports a categorical key that is not part of a scale's domain.
// It is fatal to that single lookup only.
type DomainError struct {
	Key    string   // The key that was looked up
	Domain []string // The scale's domain at lookup time
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: key %q not in domain (%d keys)", ErrCodeDomain, e.Key, len(e.Domain))
}

// Code returns the error code for this error type.
func (e *DomainError) Code() Code {
	return ErrCodeDomain
}

// IsDomain reports whether err is, or wraps, a domain lookup failure.
func IsDomain(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return true
	}
	return Is(err, ErrCodeDomain)
}
