package validator

import (
	"testing"

	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
}

func TestValidateRequestPassesCleanInput(t *testing.T) {
	NewValidator()

	err := ValidateRequest(&signupForm{
		Name:  "John Doe",
		Email: "john@example.com",
		Phone: "+1 (555) 123-4567",
	})
	assert.NoError(t, err)
}

func TestValidateRequestCollectsEveryFailure(t *testing.T) {
	NewValidator()

	err := ValidateRequest(&signupForm{
		Email: "not-an-email",
		Phone: "call me",
	})
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestPhoneRule(t *testing.T) {
	testCases := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "international", phone: "+1-555-123-4567", valid: true},
		{name: "with_parens", phone: "(555) 123 4567", valid: true},
		{name: "digits_only", phone: "5551234567", valid: true},
		{name: "letters", phone: "call me maybe", valid: false},
		{name: "empty", phone: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, phoneRegex.MatchString(tc.phone))
		})
	}
}
