package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Message:    "JSON parse error",
	StatusCode: http.StatusBadRequest,
}
