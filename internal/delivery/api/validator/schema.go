package validator

import (
	"encoding/json"
	"math"
	"net/url"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"forum/internal/errors"
)

// Input is a source of raw field values keyed by external field name.
type Input interface {
	Lookup(field string) (any, bool)
}

// Object is a decoded JSON object. A null member counts as absent.
type Object map[string]any

func (o Object) Lookup(field string) (any, bool) {
	value, ok := o[field]
	if !ok || value == nil {
		return nil, false
	}

	return value, true
}

// Values is a parsed query string or form.
type Values url.Values

func (v Values) Lookup(field string) (any, bool) {
	values, ok := v[field]
	if !ok || len(values) == 0 {
		return nil, false
	}

	return values, true
}

// Field describes the single value checked by a scalar schema.
type Field struct {
	Name    string // External name, reported in violations.
	Rules   string // validator tags, e.g. "required,min=1".
	Default string // Substituted when the value is absent. Empty means no default.
	Message string // Replaces the generated message for rule failures.
}

type compiledField struct {
	index    []int // nil for scalar schemas
	name     string
	typ      reflect.Type
	required bool
	groups   []string
	def      *string
	message  string
}

// Schema validates untyped input into a T. It is immutable once built.
type Schema[T any] struct {
	validator *Validator
	fields    []compiledField
	scalar    bool
}

// NewSchema builds an object schema from the exported fields of struct T.
//
// Tags: json or query names the field, validate holds the rules, default is
// substituted when the field is absent and message overrides rule messages.
func NewSchema[T any](v *Validator) (*Schema[T], error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, errors.Wrapf(ErrMalformedSchema, "object schema target %s is not a struct", typ)
	}

	fields := make([]compiledField, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() || sf.Tag.Get("validate") == "-" {
			continue
		}
		if tag, _, _ := strings.Cut(sf.Tag.Get("json"), ","); tag == "-" {
			continue
		}

		cf, err := v.buildField(sf.Type, fieldName(sf), sf.Tag.Get("validate"), sf.Tag.Get("message"))
		if err != nil {
			return nil, err
		}
		cf.index = sf.Index

		if def, ok := sf.Tag.Lookup("default"); ok {
			if err := cf.setDefault(def); err != nil {
				return nil, err
			}
		}

		fields = append(fields, cf)
	}

	return &Schema[T]{validator: v, fields: fields}, nil
}

// NewScalar builds a schema for a single named value of type T.
func NewScalar[T any](v *Validator, field Field) (*Schema[T], error) {
	if field.Name == "" {
		return nil, errors.Wrap(ErrMalformedSchema, "scalar schema needs a field name")
	}

	cf, err := v.buildField(reflect.TypeFor[T](), field.Name, field.Rules, field.Message)
	if err != nil {
		return nil, err
	}
	if field.Default != "" {
		if err := cf.setDefault(field.Default); err != nil {
			return nil, err
		}
	}

	return &Schema[T]{validator: v, fields: []compiledField{cf}, scalar: true}, nil
}

// MustSchema is NewSchema that panics on a malformed schema.
func MustSchema[T any](v *Validator) *Schema[T] {
	schema, err := NewSchema[T](v)
	if err != nil {
		panic(err)
	}

	return schema
}

// MustScalar is NewScalar that panics on a malformed schema.
func MustScalar[T any](v *Validator, field Field) *Schema[T] {
	schema, err := NewScalar[T](v, field)
	if err != nil {
		panic(err)
	}

	return schema
}

func (v *Validator) buildField(typ reflect.Type, name, rules, message string) (compiledField, error) {
	cf := compiledField{name: name, typ: typ, message: message}

	var remaining []string
	for _, rule := range strings.Split(rules, ",") {
		switch rule = strings.TrimSpace(rule); rule {
		case "", "omitempty":
		case ruleRequired:
			cf.required = true
		default:
			remaining = append(remaining, rule)
		}
	}

	// Rules after dive apply to elements and must stay together.
	if len(remaining) > 0 && strings.Contains(rules, "dive") {
		cf.groups = []string{strings.Join(remaining, ",")}
	} else {
		cf.groups = remaining
	}

	for _, group := range cf.groups {
		if err := v.probe(typ, group); err != nil {
			return compiledField{}, errors.Wrapf(err, "field %q", name)
		}
	}

	return cf, nil
}

func (f *compiledField) setDefault(def string) error {
	if _, err := coerce(def, f.typ); err != nil {
		return errors.Wrapf(ErrMalformedSchema, "default %q for field %q does not fit %s", def, f.name, f.typ)
	}
	f.def = &def

	return nil
}

// Validate evaluates every field of the schema against in. It returns the typed
// value, or an *Error listing all violations. A nil in is an empty input.
func (s *Schema[T]) Validate(in Input) (T, error) {
	var zero, out T
	if in == nil {
		in = Object(nil)
	}

	target := reflect.ValueOf(&out).Elem()

	var violations []Violation
	for i := range s.fields {
		cf := &s.fields[i]

		value, found, err := s.validator.check(cf, in)
		if err != nil {
			return zero, err
		}
		if len(found) > 0 {
			violations = append(violations, found...)

			continue
		}
		if !value.IsValid() {
			continue
		}

		if s.scalar {
			target.Set(value)
		} else {
			target.FieldByIndex(cf.index).Set(value)
		}
	}

	if len(violations) > 0 {
		return zero, &Error{Violations: violations}
	}

	return out, nil
}

// check resolves one field: default, presence, decoding, then each rule group.
// Text sources (query values and declared defaults) are coerced to the field
// type; JSON members must already have the field's kind.
func (v *Validator) check(cf *compiledField, in Input) (reflect.Value, []Violation, error) {
	raw, ok := in.Lookup(cf.name)
	fromText := false
	if !ok && cf.def != nil {
		raw, ok, fromText = *cf.def, true, true
	}
	if !ok {
		if cf.required {
			return reflect.Value{}, []Violation{cf.violation(ruleRequired, "")}, nil
		}

		return reflect.Value{}, nil, nil
	}
	if _, isQuery := raw.([]string); isQuery {
		fromText = true
	}

	var value reflect.Value
	var err error
	if fromText {
		value, err = coerce(raw, cf.typ)
	} else {
		value, err = decodeStrict(raw, cf.typ)
	}
	if err != nil {
		return reflect.Value{}, []Violation{cf.violation(ruleType, "")}, nil
	}

	var violations []Violation
	for _, group := range cf.groups {
		err := v.validate.Var(value.Interface(), group)
		if err == nil {
			continue
		}

		var fieldErrs playground.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return reflect.Value{}, nil, errors.Wrapf(ErrMalformedSchema, "field %q: %v", cf.name, err)
		}
		for _, fe := range fieldErrs {
			violations = append(violations, cf.violation(fe.Tag(), fe.Param()))
		}
	}

	return value, violations, nil
}

func (f *compiledField) violation(rule, param string) Violation {
	message := messageFor(rule, param, f.typ.Kind())
	if f.message != "" && rule != ruleRequired && rule != ruleType {
		message = f.message
	}

	return Violation{Field: f.name, Rule: rule, Message: message}
}

// coerce weakly decodes textual input into a new value of typ. Query values
// arrive as []string and collapse to their first element unless typ is a list.
func coerce(raw any, typ reflect.Type) (reflect.Value, error) {
	if values, ok := raw.([]string); ok && typ.Kind() != reflect.Slice && typ.Kind() != reflect.Array {
		if len(values) == 0 {
			raw = ""
		} else {
			raw = values[0]
		}
	}

	out := reflect.New(typ)
	if err := mapstructure.WeakDecode(raw, out.Interface()); err != nil {
		return reflect.Value{}, errors.Wrap(err, "coerce")
	}

	return out.Elem(), nil
}

// decodeStrict decodes a JSON value into typ without conversions: the JSON
// kind must match the target kind and numbers must fit integer targets exactly.
func decodeStrict(raw any, typ reflect.Type) (reflect.Value, error) {
	if !fitsKind(raw, typ) {
		return reflect.Value{}, errors.Errorf("%T does not fit %s", raw, typ)
	}

	out := reflect.New(typ)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out.Interface(),
		TagName: "json",
	})
	if err != nil {
		return reflect.Value{}, errors.Wrap(err, "new decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return reflect.Value{}, errors.Wrap(err, "decode")
	}

	return out.Elem(), nil
}

func fitsKind(raw any, typ reflect.Type) bool {
	if n, ok := raw.(json.Number); ok {
		f, err := n.Float64()
		if err != nil {
			return false
		}
		raw = f
	}

	value := reflect.ValueOf(raw)
	if !value.IsValid() {
		return false
	}

	switch typ.Kind() {
	case reflect.String:
		return value.Kind() == reflect.String
	case reflect.Bool:
		return value.Kind() == reflect.Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok := asFloat(value)
		if !ok || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return false
		}

		return !reflect.New(typ).Elem().OverflowInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, ok := asFloat(value)
		if !ok || f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return false
		}

		return !reflect.New(typ).Elem().OverflowUint(uint64(f))
	case reflect.Float32, reflect.Float64:
		_, ok := asFloat(value)

		return ok
	case reflect.Slice, reflect.Array:
		if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
			return false
		}
		for i := 0; i < value.Len(); i++ {
			if !fitsKind(value.Index(i).Interface(), typ.Elem()) {
				return false
			}
		}

		return true
	case reflect.Map, reflect.Struct:
		return value.Kind() == reflect.Map
	case reflect.Pointer:
		return fitsKind(raw, typ.Elem())
	case reflect.Interface:
		return true
	default:
		return false
	}
}

func asFloat(value reflect.Value) (float64, bool) {
	switch value.Kind() {
	case reflect.Float32, reflect.Float64:
		f := value.Float()

		return f, !math.IsInf(f, 0) && !math.IsNaN(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(value.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(value.Uint()), true
	default:
		return 0, false
	}
}
