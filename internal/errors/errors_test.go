package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	validation := NewValidationError()
	validation.Add("title", "This field is required.")

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrTaskNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrTaskNotFound), http.StatusNotFound},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized},
		{"validation", validation, http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := StatusCode(tc.err); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError()
	if !err.Empty() {
		t.Fatal("expected a fresh validation error to be empty")
	}

	err.Add("title", "This field is required.")
	err.Add("completed", "Must be a valid boolean.")

	want := "validation failed: completed: Must be a valid boolean.; title: This field is required."
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
