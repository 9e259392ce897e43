package dto

import (
	"time"

	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Request errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidArgument  ErrorCode = "VAL_002"
	ErrorCodeInvalidRequest   ErrorCode = "VAL_003"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"
	ErrorCodeInvalidOperation      ErrorCode = "RES_003"

	// Domain errors
	ErrorCodeNotEligible      ErrorCode = apperrors.CodeNotEligible
	ErrorCodeAlreadyRatified  ErrorCode = apperrors.CodeAlreadyRatified
	ErrorCodeDocumentNotFound ErrorCode = apperrors.CodeDocumentNotFound

	// Server errors
	ErrorCodeInternalServer     ErrorCode = "SRV_001"
	ErrorCodeStorageUnavailable ErrorCode = "SRV_002"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityWarning  ErrorSeverity = "WARNING"
	ErrorSeverityError    ErrorSeverity = "ERROR"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code       ErrorCode                  `json:"code" example:"VAL_001"`
	Message    string                     `json:"message" example:"Validation failed"`
	Field      string                     `json:"field,omitempty" example:"email"`
	Value      string                     `json:"value,omitempty" example:"jane@college.edu"`
	Severity   ErrorSeverity              `json:"severity" example:"ERROR"`
	Violations []apperrors.FieldViolation `json:"violations,omitempty"`
	Details    map[string]interface{}     `json:"details,omitempty"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

// WithField adds the offending field and value
func (e *ErrorDetail) WithField(field, value string) *ErrorDetail {
	e.Field = field
	e.Value = value
	return e
}

// WithSeverity sets the severity level of the error
func (e *ErrorDetail) WithSeverity(severity ErrorSeverity) *ErrorDetail {
	e.Severity = severity
	return e
}

// WithViolations attaches every violated field constraint
func (e *ErrorDetail) WithViolations(violations []apperrors.FieldViolation) *ErrorDetail {
	e.Violations = violations
	return e
}

// WithCode replaces the generic code with a more specific one when set
func (e *ErrorDetail) WithCode(code string) *ErrorDetail {
	if code != "" {
		e.Code = ErrorCode(code)
	}
	return e
}

// WithDetails attaches context about the failure
func (e *ErrorDetail) WithDetails(details map[string]interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   detail.Message,
		Error:     detail,
		Timestamp: time.Now().UTC(),
	}
}
