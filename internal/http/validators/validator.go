package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	dto "todo-api.com/todo-api/internal/data_models"
	apperrors "todo-api.com/todo-api/internal/errors"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// RequestValidator satisfies echo.Validator and reports failures as
// *errors.ValidationError keyed by json field name.
type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)

	// Text fields validate as their trimmed string; missing and null as absent.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if text, ok := field.Interface().(dto.Text); ok && text.Ptr() != nil {
			return text.Ptr()
		}
		return nil
	}, dto.Text{})

	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := apperrors.NewValidationError()
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" && sentNull(i, fe.StructField()) {
			out.Add(fe.Field(), "This field may not be null.")
			continue
		}
		out.Add(fe.Field(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "notblank":
		return "This field may not be blank."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	default:
		return "Invalid value."
	}
}

// sentNull reports whether the named top-level field was an explicit JSON null.
func sentNull(i interface{}, structField string) bool {
	v := reflect.Indirect(reflect.ValueOf(i))
	if v.Kind() != reflect.Struct {
		return false
	}

	field := v.FieldByName(structField)
	if !field.IsValid() || !field.CanInterface() {
		return false
	}

	nullable, ok := field.Interface().(interface{ IsNull() bool })
	return ok && nullable.IsNull()
}
