// Package validate evaluates request structs against their field
// constraints. It is pure and performs no I/O; failures name the first
// violated field by its wire name.
package validate

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"circles/internal/common/errcode"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

func init() {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Struct reports the first violated field, or nil when the input is valid.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errcode.FieldError(fe.Field(), message(fe))
	}
	return errcode.ErrInvalidParam
}

// BindError maps a JSON decode failure to the offending field when the
// decoder can name one (e.g. a string where a number belongs).
func BindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errcode.FieldError(typeErr.Field, typeErr.Field+" is invalid")
	}
	return errcode.ErrInvalidParam
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			if fe.Param() == "1" {
				return fe.Field() + " must not be empty"
			}
			return fe.Field() + " must be at least " + fe.Param() + " characters"
		}
		return fe.Field() + " must be at least " + fe.Param()
	}
	return fe.Field() + " is invalid"
}
