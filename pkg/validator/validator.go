package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MessageProvider lets a request struct override messages per field path.
// Keys are either "path" or "path.tag", the latter taking precedence.
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// Validator checks tagged structs and reports failures by JSON path.
type Validator struct {
	v        *validator.Validate
	redacted map[string]struct{}
}

// Option configures a Validator.
type Option func(*Validator)

// WithRedactedFields hides the value of the named JSON fields in reported
// errors. Matching is on the last path segment.
func WithRedactedFields(names ...string) Option {
	return func(v *Validator) {
		for _, n := range names {
			v.redacted[n] = struct{}{}
		}
	}
}

// New creates a Validator. Field names are taken from json tags.
// Password fields are redacted by default.
func New(opts ...Option) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	val := &Validator{v: v, redacted: map[string]struct{}{"password": {}}}
	for _, opt := range opts {
		opt(val)
	}
	return val
}

// Struct validates s. It returns ValidationErrors for rule failures and a
// plain error when s is not a struct.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	var custom map[string]string
	if mp, ok := s.(MessageProvider); ok {
		custom = mp.ValidationMessages()
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		out = append(out, FieldError{
			Field:   path,
			Message: v.message(path, fe, custom),
			Value:   v.value(path, fe),
		})
	}
	return out
}

var std = New()

// Validate checks s with the package-level Validator.
func Validate(s any) error {
	return std.Struct(s)
}

func (v *Validator) value(path string, fe validator.FieldError) any {
	name := path[strings.LastIndexByte(path, '.')+1:]
	if _, ok := v.redacted[name]; ok {
		return ""
	}
	return fe.Value()
}

func (v *Validator) message(path string, fe validator.FieldError, custom map[string]string) string {
	if msg, ok := custom[path+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := custom[path]; ok {
		return msg
	}
	return defaultMessage(path, fe)
}

func defaultMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return "Invalid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// fieldPath drops the root struct name from a namespace such as
// "registerRequest.fullname.firstname".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
