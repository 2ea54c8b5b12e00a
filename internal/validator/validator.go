package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/go-playground/validator/v10"
)

// phoneRegex accepts an optional leading + followed by digits, spaces,
// dashes and parentheses, matching what the dashboard forms collect.
var phoneRegex = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

var validate *validator.Validate

func NewValidator() *validator.Validate {
	validate = validator.New()

	// Report fields by their json names so validation details line up with
	// the request payload the UI sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	return validate
}

func GetValidator() *validator.Validate {
	if validate == nil {
		return NewValidator()
	}
	return validate
}

// ValidateRequest runs struct validation and folds every failing field into
// one validation error so the UI can highlight all invalid inputs at once.
func ValidateRequest(req interface{}) error {
	if err := GetValidator().Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, fe := range validateErrs {
				details[fe.Field()] = messageFor(fe)
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// messageFor translates a failed rule into the message the dashboard shows
// next to the field.
func messageFor(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Invalid email format"
	case "phone":
		return "Invalid phone format"
	case "oneof":
		return fmt.Sprintf("%s must be %s", label, strings.Join(strings.Fields(fe.Param()), " or "))
	case "gt":
		return fmt.Sprintf("%s must be a positive number", label)
	case "gte":
		return fmt.Sprintf("%s must be a non-negative number", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func fieldLabel(name string) string {
	if name == "" {
		return "Field"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
