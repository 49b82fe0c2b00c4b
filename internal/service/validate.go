package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs the tag-based checks on an input struct and maps the
// first failure onto the service error taxonomy.
func validateStruct(input any) error {
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ValidationError{
				Field:  strings.ToLower(verrs[0].Field()),
				Reason: "failed " + verrs[0].Tag() + " constraint",
			}
		}
		return err
	}
	return nil
}
