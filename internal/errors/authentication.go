package errors

import "net/http"

var ErrNotAuthenticated = &Exception{
	Message:    "Authentication credentials were not provided.",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidToken = &Exception{
	Message:    "Invalid token.",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidCredentials = &Exception{
	Message:    "Unable to log in with provided credentials.",
	StatusCode: http.StatusUnauthorized,
}
