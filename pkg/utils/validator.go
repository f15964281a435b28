package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validate tags on a request DTO. Returns nil when
// the struct passes.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationError is one failed field, shaped for the error envelope details.
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value,omitempty"`
}

// GetValidationErrors flattens a validator error into per-field entries.
func GetValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors
	}

	for _, fieldErr := range validationErrors {
		errors = append(errors, ValidationError{
			Field: strings.ToLower(fieldErr.Field()),
			Tag:   fieldErr.Tag(),
			Value: fieldErr.Param(),
		})
	}

	return errors
}
