package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

// engine reads the same `binding` tags gin uses and reports json field names.
var engine = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})
	return v
})

// DecodeInput unmarshals a procedure input into dst and validates it.
// A missing input decodes as an empty object.
func DecodeInput(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte("{}")
	}

	if err := json.Unmarshal(trimmed, dst); err != nil {
		return decodeError(err)
	}
	return Struct(dst)
}

// Struct checks the binding tags of v and returns a *domain.ValidationError listing every failure.
func Struct(v any) error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return err
	}

	fields := make([]domain.FieldError, 0, len(failures))
	for _, failure := range failures {
		fields = append(fields, domain.FieldError{
			Field: failure.Field(),
			Rule:  failure.Tag(),
			Param: failure.Param(),
		})
	}
	return &domain.ValidationError{Fields: fields}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "input"
		}
		return domain.NewValidationError(field, "type", typeErr.Type.String())
	case errors.Is(err, domain.ErrUnsupportedPreference):
		return domain.NewValidationError("preferences", "scalar", "")
	default:
		return domain.NewValidationError("input", "json", "")
	}
}
