package serverutils

import (
	"errors"
	"strings"

	"saas-notes-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest runs the struct's `validate` tags and reports failures as a
// validation error keyed by JSON-ish field name.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	details := make(map[string]interface{}, len(validationErrors))
	for _, fe := range validationErrors {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return apperror.Validation("invalid request", details)
}
