package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Request errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidOperation = errors.New("invalid operation")

	// Infrastructure errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Domain error codes carried by CustomError; they override the generic code of the sentinel
const (
	CodeNotEligible      = "RAT_001"
	CodeAlreadyRatified  = "RAT_002"
	CodeDocumentNotFound = "DOC_001"
)

// Faculty Errors
var (
	ErrFacultyNotFound    = NewResourceNotFoundError("faculty not found")
	ErrInvalidFacultyID   = NewInvalidArgumentError("invalid faculty ID format")
	ErrFacultyNotEligible = NewCustomError(ErrInvalidOperation, "faculty member is not eligible for ratification").WithCode(CodeNotEligible)
	ErrAlreadyRatified    = NewCustomError(ErrInvalidOperation, "faculty member is already ratified").WithCode(CodeAlreadyRatified)
	ErrDocumentNotFound   = NewCustomError(ErrResourceNotFound, "document not found").WithCode(CodeDocumentNotFound)
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewInvalidArgumentError creates a new custom error for malformed input with a message
func NewInvalidArgumentError(message string) error {
	return &CustomError{
		Err:     ErrInvalidArgument,
		Message: message,
	}
}

// NewInvalidOperationError creates a new custom error for an operation the record's state forbids
func NewInvalidOperationError(message string) error {
	return &CustomError{
		Err:     ErrInvalidOperation,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails wraps the error with context details; errors.Is still matches e
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	return &CustomError{
		Err:     e,
		Message: e.Message,
		Code:    e.Code,
		Details: details,
	}
}

// WithCode returns a copy of the error carrying a domain error code
func (e *CustomError) WithCode(code string) *CustomError {
	c := *e
	c.Code = code
	return &c
}

// FieldViolation describes one violated field constraint
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated constraint, not just the first
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError returns nil when there are no violations
func NewValidationError(violations []FieldViolation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// ConflictError reports a uniqueness violation
type ConflictError struct {
	Field string
	Value string
}

// NewConflictError creates a conflict error for the given field and value
func NewConflictError(field, value string) error {
	return &ConflictError{Field: field, Value: value}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Field, e.Value)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// StorageError wraps a failure of the underlying store
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err as a storage failure during op
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorageUnavailable.Error(), e.Op, e.Err)
}

// Is makes errors.Is(err, ErrStorageUnavailable) hold while still exposing the cause via Unwrap
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
