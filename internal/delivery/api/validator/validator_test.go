package validator

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateStruct(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(accountInput{Name: "Alice", Email: "alice@example.com", Password: "123456"}))

	err := v.Validate(accountInput{Name: "Al", Email: "alice@example.com"})
	assert.Equal(t, []Violation{
		{Field: "name", Rule: "min", Message: "must be at least 3 characters"},
		{Field: "password", Rule: "required", Message: "is required"},
	}, requireViolations(t, err))
}

func TestValidator_ValidatePathParams(t *testing.T) {
	type path struct {
		QuestionID string `param:"questionId" validate:"required,uuid"`
	}
	v := New()

	require.NoError(t, v.Validate(&path{QuestionID: "0190a8c4-6a8e-7cc4-9f6e-2a5b3c4d5e6f"}))

	err := v.Validate(&path{QuestionID: "not-a-uuid"})
	assert.Equal(t, []Violation{
		{Field: "questionId", Rule: "uuid", Message: "must be a valid UUID"},
	}, requireViolations(t, err))
}

func TestValidator_ValidateNonStruct(t *testing.T) {
	assert.ErrorIs(t, New().Validate("not a struct"), ErrMalformedSchema)
}

func TestError_Error(t *testing.T) {
	err := &Error{Violations: []Violation{
		{Field: "name", Rule: "min", Message: "must be at least 3 characters"},
		{Field: "email", Rule: "email", Message: "must be a valid email address"},
	}}

	assert.Equal(t, "validation failed: name: must be at least 3 characters; email: must be a valid email address", err.Error())
}

func TestMessageFor(t *testing.T) {
	tests := []struct {
		rule  string
		param string
		kind  reflect.Kind
		want  string
	}{
		{rule: "min", param: "2", kind: reflect.Slice, want: "must contain at least 2 items"},
		{rule: "max", param: "10", kind: reflect.Int, want: "must be at most 10"},
		{rule: "len", param: "4", kind: reflect.String, want: "must be exactly 4 characters"},
		{rule: "oneof", param: "asc desc", kind: reflect.String, want: "must be one of: asc, desc"},
		{rule: "type", kind: reflect.Bool, want: "must be a valid boolean"},
		{rule: "startswith", param: "x", kind: reflect.String, want: "failed the startswith=x rule"},
		{rule: "lowercase", kind: reflect.String, want: "failed the lowercase rule"},
	}

	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFor(tt.rule, tt.param, tt.kind))
		})
	}
}
