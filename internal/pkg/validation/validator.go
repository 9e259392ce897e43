package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

// Validator wraps the go-playground validator with the faculty rules registered
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON names
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on empty tags or nil funcs, both impossible here.
	_ = v.RegisterValidation("email_pattern", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Email.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("in_phone", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Phone.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return models.Department(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("designation", func(fl validator.FieldLevel) bool {
		return models.Designation(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("faculty_status", func(fl validator.FieldLevel) bool {
		return models.Status(fl.Field().String()).IsValid()
	})

	return &Validator{validate: v}
}

// Validate checks s against its struct tags and returns every violation
func (v *Validator) Validate(s interface{}) []apperrors.FieldViolation {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []apperrors.FieldViolation{{Field: "", Message: err.Error()}}
	}

	violations := make([]apperrors.FieldViolation, 0, len(validationErrs))
	for _, e := range validationErrs {
		violations = append(violations, apperrors.FieldViolation{
			Field:   fieldPath(e),
			Message: formatValidationError(e),
		})
	}
	return violations
}

// fieldPath strips the root struct name from the namespace ("Faculty.name.firstName" -> "name.firstName")
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", e.Param())
		}
		return "must be at least " + e.Param()
	case "gte":
		return "must not be negative"
	case "email_pattern":
		return "must be a valid email address"
	case "in_phone":
		return "must match +91-XXXXXXXXXX"
	case "nonblank":
		return "must not be blank"
	case "department":
		return "must be one of: " + joinValues(models.AllDepartments())
	case "designation":
		return "must be one of: " + joinValues(models.AllDesignations())
	case "faculty_status":
		return fmt.Sprintf("must be one of: %s, %s, %s", models.StatusActive, models.StatusInactive, models.StatusOnLeave)
	default:
		return "validation failed: " + e.Tag()
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
