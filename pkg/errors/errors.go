// Package errors provides structured error types for fordview.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *NOT_FOUND: Resource not found
//   - NEGATIVE_CYCLE, UNREACHABLE: Shortest-path outcomes that cannot produce a path
//   - STORAGE_ERROR, INTERNAL_ERROR: Backend and unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid node id: %q", id)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Classify errors returned by the graph and engine packages
//	err = errors.FromGraph(g.AddEdge(u, v, w))
//	status := errors.HTTPStatus(errors.GetCode(err))
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	"github.com/matzehuels/fordview/pkg/graph"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidWeight Code = "INVALID_WEIGHT"
	ErrCodeInvalidMode   Code = "INVALID_MODE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidNode   Code = "INVALID_NODE"

	// Resource not found errors
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeNodeNotFound  Code = "NODE_NOT_FOUND"
	ErrCodeEdgeNotFound  Code = "EDGE_NOT_FOUND"
	ErrCodeGraphNotFound Code = "GRAPH_NOT_FOUND"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Shortest-path outcomes
	ErrCodeNegativeCycle Code = "NEGATIVE_CYCLE"
	ErrCodeUnreachable   Code = "UNREACHABLE"

	// Backend and internal errors
	ErrCodeStorage     Code = "STORAGE_ERROR"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// FromGraph classifies an error returned by the graph store or the engine.
// The original error becomes the message and stays reachable through
// errors.Is. Nil stays nil and an *Error passes through unchanged.
func FromGraph(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Code: classify(err), Message: err.Error(), Cause: err}
}

func classify(err error) Code {
	switch {
	case errors.Is(err, graph.ErrInvalidWeight):
		return ErrCodeInvalidWeight
	case errors.Is(err, graph.ErrInvalidMode):
		return ErrCodeInvalidMode
	case errors.Is(err, graph.ErrEdgeNotFound):
		return ErrCodeEdgeNotFound
	case errors.Is(err, graph.ErrNodeNotFound),
		errors.Is(err, bellmanford.ErrSourceNotFound),
		errors.Is(err, bellmanford.ErrTargetNotFound):
		return ErrCodeNodeNotFound
	case errors.Is(err, graph.ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, bellmanford.ErrCycleInPath):
		return ErrCodeNegativeCycle
	case errors.Is(err, bellmanford.ErrUnreachable):
		return ErrCodeUnreachable
	default:
		return ErrCodeInternal
	}
}

// HTTPStatus maps an error code to the status the HTTP API responds with.
func HTTPStatus(code Code) int {
	switch {
	case code == ErrCodeNegativeCycle:
		return http.StatusConflict
	case code == ErrCodeUnreachable:
		return http.StatusUnprocessableEntity
	case code == ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	case code == ErrCodeStorage:
		return http.StatusServiceUnavailable
	case strings.HasPrefix(string(code), "INVALID_"):
		return http.StatusBadRequest
	case strings.HasSuffix(string(code), "NOT_FOUND"):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
