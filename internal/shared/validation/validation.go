// Package validation wraps go-playground/validator for domain and transport checks.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the process-wide validator with JSON field naming.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New()
		RegisterJSONTagNames(instance)
	})
	return instance
}

// RegisterJSONTagNames makes field errors report the json (or form) name instead of the Go field.
func RegisterJSONTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
}

// Email reports whether value is a syntactically valid address.
func Email(value string) bool {
	return Validator().Var(value, "required,email") == nil
}

// URL reports whether value is an absolute http(s) URL.
func URL(value string) bool {
	if Validator().Var(value, "required,url") != nil {
		return false
	}
	lower := strings.ToLower(value)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// FieldErrors flattens validator errors into field -> message.
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return fields, true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "dive":
		return "contains an invalid item"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
