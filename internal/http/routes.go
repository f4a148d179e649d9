package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"todo-api.com/todo-api/internal/docs"
	middleware "todo-api.com/todo-api/internal/http/middlewares"
	"todo-api.com/todo-api/internal/http/validators"
	"todo-api.com/todo-api/internal/services"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func NewServer(taskService *services.TaskService, authService *services.AuthService, db Pinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validators.New()
	e.HTTPErrorHandler = NewErrorHandler()

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())

	Register(e, NewTaskHandler(taskService), NewAuthHandler(authService), authService, db)
	return e
}

func Register(e *echo.Echo, tasks *TaskHandler, auth *AuthHandler, authenticator middleware.Authenticator, db Pinger) {
	requireAuth := middleware.Authenticate(authenticator)

	e.GET("/health", health(db))
	e.GET("/docs/openapi.json", docs.OpenAPI)

	e.POST("/auth/register", auth.Register)
	e.POST("/auth/login", auth.Login)
	e.POST("/auth/logout", auth.Logout, requireAuth)
	e.GET("/auth/me", auth.Me, requireAuth)

	todos := e.Group("/todos", requireAuth)
	todos.GET("", tasks.ListTasks)
	todos.POST("", tasks.CreateTask)
	todos.GET("/:id", tasks.GetTask)
	todos.PUT("/:id", tasks.UpdateTask)
	todos.DELETE("/:id", tasks.DeleteTask)
}

func health(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}
