package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	DateID string `json:"date_id" validate:"required,oneof=today tomorrow"`
}

func TestCustomValidator_FormatsErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{Email: "not-an-email", DateID: "someday"})
	assert.Error(t, err)

	msgs := v.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", msgs["Email"])
	assert.Equal(t, "DateID must be one of: today tomorrow", msgs["DateID"])
}

func TestCustomValidator_Var(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Var("kislay@example.com", "required,email"))
	assert.Error(t, v.Var("kislay", "required,email"))
}
