package validators

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	apperrors "todo-api.com/todo-api/internal/errors"
)

// TranslateBindError turns a body decoding failure into either a field error
// (wrong JSON type for a known field) or a generic parse error.
func TranslateBindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		out := apperrors.NewValidationError()
		out.Add(typeErr.Field, typeMessage(typeErr.Type))
		return out
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &apperrors.Exception{
			Message:    apperrors.ErrInvalidJSON.Message + " - " + syntaxErr.Error(),
			StatusCode: http.StatusBadRequest,
		}
	}

	return err
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "Invalid value."
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "Not a valid string."
	case reflect.Bool:
		return "Must be a valid boolean."
	default:
		return "Invalid value."
	}
}
