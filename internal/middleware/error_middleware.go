package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

// HandleAPIError maps an application error onto a status code and an error envelope
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorResponse(err error) (int, *dto.ErrorDetail) {
	status, detail := baseErrorResponse(err)
	var customErr *apperrors.CustomError
	if status < http.StatusInternalServerError && errors.As(err, &customErr) {
		detail.WithCode(customErr.Code).WithDetails(customErr.Details)
	}
	return status, detail
}

func baseErrorResponse(err error) (int, *dto.ErrorDetail) {
	var (
		validationErr *apperrors.ValidationError
		conflictErr   *apperrors.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithSeverity(dto.ErrorSeverityWarning).
			WithViolations(validationErr.Violations)
	case errors.As(err, &conflictErr):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, conflictErr.Error()).
			WithSeverity(dto.ErrorSeverityWarning).
			WithField(conflictErr.Field, conflictErr.Value)
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidArgument, messageOf(err, "Invalid argument")).
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageOf(err, "Resource not found")).
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrInvalidOperation):
		return http.StatusUnprocessableEntity, dto.NewErrorDetail(dto.ErrorCodeInvalidOperation, messageOf(err, "Operation not allowed")).
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeStorageUnavailable, "Storage is unavailable, try again later").
			WithSeverity(dto.ErrorSeverityCritical)
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}

// messageOf prefers the message of a CustomError in the chain
func messageOf(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
