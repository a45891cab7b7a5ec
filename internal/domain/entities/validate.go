package entities

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	domainerrors "mintfire.backend/internal/domain/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field paths by json name so form errors line up with payloads
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// checkStruct runs tag-based validation and converts the result into the
// domain field-error shape.
func checkStruct(s interface{}) []domainerrors.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domainerrors.FieldError{{Path: "", Message: err.Error()}}
	}

	fields := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domainerrors.FieldError{
			Path:    fieldPath(fe.Namespace()),
			Message: tagMessage(fe),
		})
	}
	return fields
}

// fieldPath strips the leading struct name from a validator namespace,
// e.g. "CreateBlogPostInput.slug" -> "slug".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}

// finish wraps collected field errors into a validation error, or nil.
func finish(fields []domainerrors.FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return domainerrors.Validation(fields)
}
