package validator

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"forum/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountInput struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type pageInput struct {
	Page int `query:"page" validate:"min=1" default:"1" message:"Page must be at least 1"`
}

func requireViolations(t *testing.T, err error) []Violation {
	t.Helper()

	var vErr *Error
	require.True(t, errors.As(err, &vErr), "expected *Error, got %v", err)

	return vErr.Violations
}

func TestSchema_ValidObject(t *testing.T) {
	schema := MustSchema[accountInput](New())

	got, err := schema.Validate(Object{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "123456",
	})

	require.NoError(t, err)
	assert.Equal(t, accountInput{Name: "Alice", Email: "alice@example.com", Password: "123456"}, got)
}

func TestSchema_CollectsEveryViolation(t *testing.T) {
	schema := MustSchema[accountInput](New())

	_, err := schema.Validate(Object{
		"name":     "Al",
		"email":    "bad",
		"password": "123",
	})

	assert.Equal(t, []Violation{
		{Field: "name", Rule: "min", Message: "must be at least 3 characters"},
		{Field: "email", Rule: "email", Message: "must be a valid email address"},
		{Field: "password", Rule: "min", Message: "must be at least 6 characters"},
	}, requireViolations(t, err))
}

func TestSchema_RequiredOnlyFiresWhenAbsent(t *testing.T) {
	schema := MustSchema[accountInput](New())

	_, err := schema.Validate(Object{
		"name":  "",
		"email": nil,
	})

	assert.Equal(t, []Violation{
		{Field: "name", Rule: "min", Message: "must be at least 3 characters"},
		{Field: "email", Rule: "required", Message: "is required"},
		{Field: "password", Rule: "required", Message: "is required"},
	}, requireViolations(t, err))
}

func TestSchema_NilInput(t *testing.T) {
	schema := MustSchema[accountInput](New())

	_, err := schema.Validate(nil)

	assert.Len(t, requireViolations(t, err), 3)
}

func TestSchema_QueryValuesAreCoerced(t *testing.T) {
	type input struct {
		Count   int     `query:"count" validate:"required,gte=0"`
		Ratio   float64 `query:"ratio"`
		Enabled bool    `query:"enabled"`
	}
	schema := MustSchema[input](New())

	got, err := schema.Validate(Values{"count": {"42"}, "ratio": {"0.5"}, "enabled": {"true"}})
	require.NoError(t, err)
	assert.Equal(t, input{Count: 42, Ratio: 0.5, Enabled: true}, got)

	_, err = schema.Validate(Values{"count": {"forty-two"}, "ratio": {"half"}})
	assert.Equal(t, []Violation{
		{Field: "count", Rule: "type", Message: "must be a valid integer"},
		{Field: "ratio", Rule: "type", Message: "must be a valid number"},
	}, requireViolations(t, err))
}

func TestSchema_ObjectMembersKeepTheirKind(t *testing.T) {
	schema := MustSchema[accountInput](New())

	tests := []struct {
		name string
		body Object
		want []Violation
	}{
		{
			name: "numbers are not strings",
			body: Object{"name": 12345.0, "email": "a@b.com", "password": 1234567.0},
			want: []Violation{
				{Field: "name", Rule: "type", Message: "must be a valid string"},
				{Field: "password", Rule: "type", Message: "must be a valid string"},
			},
		},
		{
			name: "boolean is a type violation",
			body: Object{"name": true, "email": "a@b.com", "password": "123456"},
			want: []Violation{
				{Field: "name", Rule: "type", Message: "must be a valid string"},
			},
		},
		{
			name: "objects and lists are not strings",
			body: Object{"name": map[string]any{}, "email": []any{"a@b.com"}, "password": "123456"},
			want: []Violation{
				{Field: "name", Rule: "type", Message: "must be a valid string"},
				{Field: "email", Rule: "type", Message: "must be a valid string"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.Validate(tt.body)
			assert.Equal(t, tt.want, requireViolations(t, err))
		})
	}
}

func TestSchema_ObjectNumbers(t *testing.T) {
	type input struct {
		Count int      `json:"count"`
		Ratio float64  `json:"ratio"`
		Tags  []string `json:"tags"`
		On    bool     `json:"on"`
	}
	schema := MustSchema[input](New())

	got, err := schema.Validate(Object{"count": 3.0, "ratio": 2.0, "tags": []any{"a", "b"}, "on": false})
	require.NoError(t, err)
	assert.Equal(t, input{Count: 3, Ratio: 2, Tags: []string{"a", "b"}}, got)

	got, err = schema.Validate(Object{"count": json.Number("7")})
	require.NoError(t, err)
	assert.Equal(t, 7, got.Count)

	_, err = schema.Validate(Object{"count": 3.9, "ratio": "0.5", "tags": []any{"a", 1.0}, "on": "true"})
	assert.Equal(t, []Violation{
		{Field: "count", Rule: "type", Message: "must be a valid integer"},
		{Field: "ratio", Rule: "type", Message: "must be a valid number"},
		{Field: "tags", Rule: "type", Message: "must be a valid list"},
		{Field: "on", Rule: "type", Message: "must be a valid boolean"},
	}, requireViolations(t, err))

	_, err = schema.Validate(Object{"count": 1e300})
	assert.Equal(t, []Violation{
		{Field: "count", Rule: "type", Message: "must be a valid integer"},
	}, requireViolations(t, err))
}

func TestSchema_ByteLengthRule(t *testing.T) {
	type input struct {
		Password string `json:"password" validate:"required,min=6,maxbytes=72"`
	}
	schema := MustSchema[input](New())

	_, err := schema.Validate(Object{"password": strings.Repeat("a", 72)})
	require.NoError(t, err)

	// 40 runes encode to 80 bytes, within max=72 but over the byte limit.
	_, err = schema.Validate(Object{"password": strings.Repeat("é", 40)})
	assert.Equal(t, []Violation{
		{Field: "password", Rule: "maxbytes", Message: "must be at most 72 bytes"},
	}, requireViolations(t, err))

	type badParam struct {
		Password string `json:"password" validate:"maxbytes=lots"`
	}
	_, err = NewSchema[badParam](New())
	assert.ErrorIs(t, err, ErrMalformedSchema)
}

func TestSchema_MultipleRulesOnOneField(t *testing.T) {
	type input struct {
		Code string `json:"code" validate:"required,min=4,alphanum"`
	}
	schema := MustSchema[input](New())

	_, err := schema.Validate(Object{"code": "a-"})

	assert.Equal(t, []Violation{
		{Field: "code", Rule: "min", Message: "must be at least 4 characters"},
		{Field: "code", Rule: "alphanum", Message: "must contain only letters and digits"},
	}, requireViolations(t, err))
}

func TestSchema_QueryDefaults(t *testing.T) {
	schema := MustSchema[pageInput](New())

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "absent uses default", query: "", want: 1},
		{name: "explicit page", query: "page=3", want: 3},
		{name: "first value wins", query: "page=2&page=9", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := schema.Validate(Values(query))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Page)
		})
	}
}

func TestSchema_QueryViolations(t *testing.T) {
	schema := MustSchema[pageInput](New())

	_, err := schema.Validate(Values(url.Values{"page": {"0"}}))
	assert.Equal(t, []Violation{
		{Field: "page", Rule: "min", Message: "Page must be at least 1"},
	}, requireViolations(t, err))

	_, err = schema.Validate(Values(url.Values{"page": {"abc"}}))
	assert.Equal(t, []Violation{
		{Field: "page", Rule: "type", Message: "must be a valid integer"},
	}, requireViolations(t, err))
}

func TestScalarSchema_ObjectInput(t *testing.T) {
	schema := MustScalar[int](New(), Field{Name: "page", Rules: "min=1", Default: "1"})

	got, err := schema.Validate(Object{"page": 3.0})
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = schema.Validate(Object{"page": 3.9})
	assert.Equal(t, []Violation{
		{Field: "page", Rule: "type", Message: "must be a valid integer"},
	}, requireViolations(t, err))

	_, err = schema.Validate(Object{"page": "3"})
	assert.Equal(t, []Violation{
		{Field: "page", Rule: "type", Message: "must be a valid integer"},
	}, requireViolations(t, err))

	got, err = schema.Validate(Object{})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestScalarSchema(t *testing.T) {
	schema := MustScalar[int](New(), Field{
		Name:    "page",
		Rules:   "min=1",
		Default: "1",
		Message: "Page must be at least 1",
	})

	got, err := schema.Validate(Values{})
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = schema.Validate(Values{"page": {"3"}})
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = schema.Validate(Values{"page": {"0"}})
	assert.Equal(t, []Violation{
		{Field: "page", Rule: "min", Message: "Page must be at least 1"},
	}, requireViolations(t, err))
}

func TestSchema_IgnoresUnknownAndSkippedFields(t *testing.T) {
	type input struct {
		Title    string `json:"title" validate:"required"`
		Internal string `json:"-"`
		Ignored  string `json:"ignored" validate:"-"`
		hidden   string
	}
	schema := MustSchema[input](New())

	got, err := schema.Validate(Object{"title": "hello", "Internal": "x", "ignored": "y", "extra": 1})
	require.NoError(t, err)
	assert.Equal(t, input{Title: "hello"}, got)
	assert.Empty(t, got.hidden)
}

func TestSchema_Malformed(t *testing.T) {
	v := New()

	_, err := NewSchema[int](v)
	assert.ErrorIs(t, err, ErrMalformedSchema)

	type unknownRule struct {
		Name string `json:"name" validate:"required,definitely_not_a_rule"`
	}
	_, err = NewSchema[unknownRule](v)
	assert.ErrorIs(t, err, ErrMalformedSchema)

	type badDefault struct {
		Page int `query:"page" default:"first"`
	}
	_, err = NewSchema[badDefault](v)
	assert.ErrorIs(t, err, ErrMalformedSchema)

	_, err = NewScalar[int](v, Field{Rules: "min=1"})
	assert.ErrorIs(t, err, ErrMalformedSchema)

	assert.Panics(t, func() { MustSchema[unknownRule](v) })
	assert.Panics(t, func() { MustScalar[string](v, Field{Name: "q", Rules: "min=abc"}) })
}

func TestSchema_ConcurrentUse(t *testing.T) {
	schema := MustSchema[accountInput](New())

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()

			_, err := schema.Validate(Object{"name": "Al"})
			var vErr *Error
			if assert.True(t, errors.As(err, &vErr)) {
				assert.Len(t, vErr.Violations, 3)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
