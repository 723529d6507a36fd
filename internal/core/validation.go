// AngelaMos | 2026
// validation.go

package core

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator reports fields by their JSON names. Nullable fields are
// validated as pointers, so omitnil skips both an absent key and null.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterCustomTypeFunc(nullableValue,
		Nullable[string]{},
		Nullable[int64]{},
		Nullable[float64]{},
	)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// FieldValidator is implemented by requests with rules that struct tags
// cannot express.
type FieldValidator interface {
	ValidateFields() FieldErrors
}

// Validate runs struct validation, then any FieldValidator rules, and
// converts failures into a 422.
func Validate(v *validator.Validate, req any) *AppError {
	fields := FieldErrors{}

	if err := v.Struct(req); err != nil {
		fields.Merge(FormatValidationError(err))
	}

	if fv, ok := req.(FieldValidator); ok {
		fields.Merge(fv.ValidateFields())
	}

	if fields.Any() {
		return ValidationError(fields)
	}
	return nil
}

func nullableValue(field reflect.Value) any {
	if n, ok := field.Interface().(interface{ pointer() any }); ok {
		return n.pointer()
	}
	return nil
}

func FormatValidationError(err error) FieldErrors {
	fields := FieldErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields.Add("request", err.Error())
		return fields
	}

	for _, fe := range verrs {
		field := fe.Field()
		fields.Add(field, ruleMessage(fe))
	}

	return fields
}

func ruleMessage(fe validator.FieldError) string {
	label := "The " + attributeName(fe.Field()) + " field"

	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "email":
		return label + " must be a valid email address."
	case "numeric", "number":
		return label + " must be a number."
	case "max":
		if isString(fe) {
			return label + " must not be greater than " + fe.Param() + " characters."
		}
		return label + " must not be greater than " + fe.Param() + "."
	case "min", "gte":
		if isString(fe) {
			return label + " must be at least " + fe.Param() + " characters."
		}
		return label + " must be at least " + fe.Param() + "."
	case "gt":
		return label + " must be greater than " + fe.Param() + "."
	default:
		return label + " is invalid."
	}
}

func isString(fe validator.FieldError) bool {
	kind := fe.Kind()
	if kind == reflect.Pointer {
		kind = fe.Type().Elem().Kind()
	}
	return kind == reflect.String
}
