package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "todo-api.com/todo-api/internal/errors"
	"todo-api.com/todo-api/internal/logger"
)

// NewErrorHandler renders every error returned by a handler or middleware.
// Not-found uses the {"res": ...} shape clients already rely on, field errors
// are returned as a field map, everything else as {"detail": ...}.
func NewErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := render(err)
		if status == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func render(err error) (int, interface{}) {
	if errors.Is(err, apperrors.ErrTaskNotFound) {
		return http.StatusNotFound, echo.Map{"res": apperrors.ErrTaskNotFound.Message}
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Fields
	}

	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode, echo.Map{"detail": appErr.Message}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, echo.Map{"detail": message}
	}

	return http.StatusInternalServerError, echo.Map{"detail": "A server error occurred."}
}
