package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	config "todo-api.com/todo-api/internal/configs"
	httpapi "todo-api.com/todo-api/internal/http"
	repository "todo-api.com/todo-api/internal/repositories"
	"todo-api.com/todo-api/internal/services"
	"todo-api.com/todo-api/internal/tokens"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Migrates the database and serves the todo API until SIGINT or SIGTERM",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bootstrap()
		if err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := database.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		revocations, closeStore, err := newRevocationStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		authService := services.NewAuthService(
			repository.NewUserRepository(database),
			revocations,
			cfg.JWTSecret,
			cfg.TokenTTL,
			cfg.BcryptCost,
		)
		taskService := services.NewTaskService(repository.NewTaskRepository(database))

		e := httpapi.NewServer(taskService, authService, sqlDB)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			slog.Info("HTTP server listening", "addr", cfg.AppURL, "token_store", cfg.TokenStore)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				return err
			}
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}

		slog.Info("HTTP server shut down gracefully")
		return nil
	},
}

func newRevocationStore(cfg config.Config) (tokens.RevocationStore, func(), error) {
	if cfg.TokenStore != "redis" {
		return tokens.NewMemoryRevocationStore(), func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	return tokens.NewRedisRevocationStore(redisClient, cfg.RedisKeyPrefix), redisClient.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
