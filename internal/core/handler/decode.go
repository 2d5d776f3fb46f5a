package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestError is a client mistake; its message is safe to return as-is.
type requestError struct {
	message string
}

func (e *requestError) Error() string { return e.message }

var errInvalidPayload = &requestError{message: "invalid request payload"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requiredFields lists the JSON keys of T that carry no omitempty option.
func requiredFields[T any]() []string {
	t := reflect.TypeFor[T]()
	var names []string
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" || strings.Contains(opts, "omitempty") {
			continue
		}
		names = append(names, name)
	}
	return names
}

var jsonNull = []byte("null")

// decodeRequest checks that body is a JSON object holding every required key
// with a non-null value,
// decodes it into T and runs the struct's validate tags. Unknown keys are
// ignored.
func decodeRequest[T any](body []byte, required []string) (T, error) {
	var req T

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		return req, errInvalidPayload
	}
	for _, name := range required {
		if raw, ok := keys[name]; !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
			return req, &requestError{message: fmt.Sprintf("missing required field: %s", name)}
		}
	}

	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return req, &requestError{message: fmt.Sprintf("invalid value for field: %s", typeErr.Field)}
		}
		return req, errInvalidPayload
	}

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return req, &requestError{message: describeFieldError(fieldErrs[0])}
		}
		return req, fmt.Errorf("validate request: %w", err)
	}

	return req, nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required_without":
		return fmt.Sprintf("%s is required when %s is absent", fe.Field(), jsonName(fe.Param()))
	default:
		return fmt.Sprintf("invalid value for field: %s", fe.Field())
	}
}

// jsonName turns a Go field name such as TaxRate into tax_rate.
func jsonName(goName string) string {
	var b strings.Builder
	for i, r := range goName {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
