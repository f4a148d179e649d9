package errors

import "net/http"

// ErrTaskNotFound covers both a missing id and an id owned by someone else.
var ErrTaskNotFound = &Exception{
	Message:    "Object with todo id does not exist",
	StatusCode: http.StatusNotFound,
}
