package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "todo-api.com/todo-api/internal/errors"
	"todo-api.com/todo-api/internal/logger"
	model "todo-api.com/todo-api/internal/models"
	"todo-api.com/todo-api/internal/services"
)

const (
	userContextKey   = "auth.user"
	claimsContextKey = "auth.claims"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, *services.Claims, error)
}

// Authenticate rejects the request before the handler runs unless it carries
// a valid bearer token.
func Authenticate(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return apperrors.ErrNotAuthenticated
			}

			user, claims, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, apperrors.ErrInvalidToken) {
					logger.WarnContext(c.Request().Context(), "bearer token rejected", "path", c.Path())
					c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer error="invalid_token"`)
				}
				return err
			}

			c.Set(userContextKey, user)
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// CurrentUser is only meaningful behind Authenticate.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

func CurrentClaims(c echo.Context) *services.Claims {
	claims, _ := c.Get(claimsContextKey).(*services.Claims)
	return claims
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
