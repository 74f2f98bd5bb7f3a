package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Menatic/IT-Support/internal/shared/errors"
)

var validate *validator.Validate

// init initializes the validator
func init() {
	validate = validator.New()

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("Validation failed")
	}

	fields := make([]errors.FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields = append(fields, errors.FieldError{
			Field:   fieldError.Field(),
			Message: getFieldErrorMessage(fieldError),
		})
	}

	return errors.NewFieldValidationError("Validation failed", fields)
}

// BindingErrorToAppError converts a gin binding error into the field-level
// validation error the API responds with.
func BindingErrorToAppError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		fields := make([]errors.FieldError, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields = append(fields, errors.FieldError{
				Field:   fieldError.Field(),
				Message: getFieldErrorMessage(fieldError),
			})
		}
		return errors.NewFieldValidationError("Validation failed", fields)
	}
	return errors.NewBadRequestError("Invalid request body", err.Error())
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "alphanum":
		return fmt.Sprintf("%s must contain only alphanumeric characters", field)
	case "numeric":
		return fmt.Sprintf("%s must be a valid number", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
