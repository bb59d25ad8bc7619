// Package validator turns untyped request input into typed values, collecting
// every rule violation instead of stopping at the first one.
//
// Rules are go-playground/validator tags. Query values and declared defaults
// are coerced to the target field type with mapstructure's weak decoding; JSON
// members must already carry the field's kind. Both happen before rules run.
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"forum/internal/errors"
)

const (
	ruleRequired = "required"
	ruleType     = "type"

	// ruleMaxBytes bounds the UTF-8 encoded length of a string, unlike max
	// which counts runes.
	ruleMaxBytes = "maxbytes"
)

// ErrMalformedSchema marks a schema that cannot be evaluated: a non-struct
// target, an unknown rule or a default that does not fit its field.
// It is a programming error and is reported when the schema is built.
var ErrMalformedSchema = errors.New("malformed validation schema")

// Violation is a single failed rule.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error carries every violation found in one input, in field declaration order.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator owns the rule engine shared by all schemas. It is safe for concurrent use.
type Validator struct {
	validate *playground.Validate
}

func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)
	if err := validate.RegisterValidation(ruleMaxBytes, maxBytes); err != nil {
		panic(err)
	}

	return &Validator{validate: validate}
}

// maxBytes panics on a non-numeric parameter, as the built-in rules do, so
// probe reports it when the schema is built.
func maxBytes(fl playground.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("bad %s parameter %q", ruleMaxBytes, fl.Param()))
	}

	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return len(field.String()) <= limit
	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.Uint8 {
			return field.Len() <= limit
		}
	}

	return false
}

// Validate checks an already bound struct. It lets the Validator serve as echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(ErrMalformedSchema, err.Error())
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: messageFor(fe.Tag(), fe.Param(), fe.Kind()),
		})
	}

	return &Error{Violations: violations}
}

// probe runs rule against the zero value of typ to surface unknown or
// misapplied rules, which the rule engine reports by panicking.
func (v *Validator) probe(typ reflect.Type, rule string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrMalformedSchema, "rule %q on %s: %v", rule, typ, r)
		}
	}()

	_ = v.validate.Var(reflect.New(typ).Elem().Interface(), rule)

	return nil
}

// fieldName is the external name of a struct field: its json tag, then its
// query or param tag, then the Go name.
func fieldName(field reflect.StructField) string {
	for _, key := range []string{"json", "query", "param"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}

func messageFor(rule, param string, kind reflect.Kind) string {
	switch rule {
	case ruleRequired:
		return "is required"
	case ruleType:
		return "must be a valid " + kindName(kind)
	case "min", "gte":
		return bound("at least", param, kind)
	case "max", "lte":
		return bound("at most", param, kind)
	case "gt":
		return "must be greater than " + param
	case "lt":
		return "must be less than " + param
	case "len":
		return bound("exactly", param, kind)
	case ruleMaxBytes:
		return fmt.Sprintf("must be at most %s bytes", param)
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "uuid", "uuid4", "uuid7":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "alphanum":
		return "must contain only letters and digits"
	}

	if param != "" {
		return fmt.Sprintf("failed the %s=%s rule", rule, param)
	}

	return fmt.Sprintf("failed the %s rule", rule)
}

func bound(qualifier, param string, kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters", qualifier, param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain %s %s items", qualifier, param)
	default:
		return fmt.Sprintf("must be %s %s", qualifier, param)
	}
}

func kindName(kind reflect.Kind) string {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return kind.String()
	}
}
