// Package errors provides custom error types for the pareto toolkit.
// These errors enable programmatic error checking and keep reporting
// consistent between the merge engine and the collection pipeline.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the pareto system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoJSON indicates that no JSON could be recovered from a response
	ErrNoJSON = errors.New("no JSON found")

	// ErrAPIKeyRequired indicates that an API key is required but not provided
	ErrAPIKeyRequired = errors.New("API key required")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// MergeError represents an error during a dataset merge operation
type MergeError struct {
	Batch  string // "benchmarks" or "models"
	Target string // destination file, when resolved
	Err    error
}

// Error implements the error interface
func (e *MergeError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("merge error for %s batch into %s: %v", e.Batch, e.Target, e.Err)
	}
	return fmt.Sprintf("merge error for %s batch: %v", e.Batch, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *MergeError) Unwrap() error {
	return e.Err
}

// ExtractionError indicates that every JSON extraction strategy failed
// on a piece of LLM output. Callers can detect it with errors.Is and
// retry with a different prompt.
type ExtractionError struct {
	Strategies int    // number of strategies attempted
	Snippet    string // leading fragment of the offending text
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no valid JSON found after %d extraction strategies: %q", e.Strategies, e.Snippet)
}

// Is implements errors.Is support
func (e *ExtractionError) Is(target error) bool {
	return target == ErrNoJSON
}

// ScrapeError represents a failure fetching or parsing one provider's page
type ScrapeError struct {
	Provider string
	URL      string
	Err      error
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("scrape error for %s (%s): %v", e.Provider, e.URL, e.Err)
	}
	return fmt.Sprintf("scrape error for %s: %v", e.Provider, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNoJSON checks if an error indicates extraction strategy exhaustion
func IsNoJSON(err error) bool {
	return errors.Is(err, ErrNoJSON)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
