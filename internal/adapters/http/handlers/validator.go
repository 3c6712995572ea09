package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationMessage renders the first failed rule as a readable message
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return field + " is required"
		case "email":
			return "invalid email address"
		case "min":
			return field + " must be at least " + fe.Param()
		case "max":
			return field + " must be at most " + fe.Param()
		case "datetime":
			return field + " must be a date in YYYY-MM-DD format"
		case "oneof":
			return field + " must be one of: " + fe.Param()
		}
		return field + " is invalid"
	}
	return "Invalid request body"
}
