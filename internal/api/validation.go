package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"blogapi/internal/api/shared"
)

// validate is the shared rule engine for all request payloads. Field names
// in reported errors come from the json tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequest runs the payload's rule set and returns normalized
// field/message pairs. The order follows the struct's field declaration
// order, not the arrival order in the payload. A nil result means the
// payload is valid.
func ValidateRequest(payload any) []shared.FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Struct-level failures (nil payload, non-struct) should never
		// happen for our request types.
		return []shared.FieldError{{Field: "request", Message: "is not valid."}}
	}

	details := make([]shared.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, shared.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return details
}

// fieldLabels maps json field names to the human labels used in validation
// messages.
var fieldLabels = map[string]string{
	"email":                "Email",
	"password":             "Password",
	"name":                 "Name",
	"currentPassword":      "Current password",
	"newPassword":          "New password",
	"passwordConfirmation": "Password confirmation",
	"title":                "Title",
	"content":              "Content",
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// fieldMessage translates a failed rule into the message wording of the API
// contract.
func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty.", label)
	case "email":
		return fmt.Sprintf("%s format is not correct.", label)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters.", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "eqfield":
		return "Passwords do not match"
	default:
		return fmt.Sprintf("%s is not valid.", label)
	}
}
