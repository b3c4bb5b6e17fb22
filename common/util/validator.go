package util

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report the key the caller actually wrote: yaml for config.yml, json for request bodies.
	validate.RegisterTagNameFunc(fieldKey)
}

func fieldKey(field reflect.StructField) string {
	for _, tag := range []string{"yaml", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// ValidateStruct validates a struct using validator tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

var tagMessages = map[string]string{
	"required":         " is required",
	"required_with":    " is required when %s is set",
	"required_without": " is required when %s is not set",
	"email":            " must be a valid email",
	"url":              " must be a valid URL",
	"min":              " must be at least %s",
	"max":              " must be at most %s",
	"oneof":            " must be one of [%s]",
	"datetime":         " must be a date formatted as %s",
}

// GetValidationErrors formats validation errors into readable messages
func GetValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		suffix, known := tagMessages[fieldError.Tag()]
		if !known {
			suffix = " is invalid"
		}
		messages = append(messages, fieldError.Field()+strings.Replace(suffix, "%s", fieldError.Param(), 1))
	}
	return messages
}
