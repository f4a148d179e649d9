package http

import (
	"github.com/labstack/echo/v4"

	"todo-api.com/todo-api/internal/http/validators"
)

// bindBody decodes only the request body; path parameters never reach the
// request shape.
func bindBody(c echo.Context, req interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return validators.TranslateBindError(err)
	}
	return nil
}
