package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	dto "todo-api.com/todo-api/internal/data_models"
	"todo-api.com/todo-api/internal/http/validators"
	repository "todo-api.com/todo-api/internal/repositories"
	"todo-api.com/todo-api/internal/services"
	"todo-api.com/todo-api/internal/tokens"
)

var (
	createUsername string
	createPassword string
)

var createUserCmd = &cobra.Command{
	Use:   "createuser",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := dto.RegisterRequest{Username: createUsername, Password: createPassword}
		if err := validators.New().Validate(&req); err != nil {
			return err
		}

		cfg, err := bootstrap()
		if err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := database.DB(); err == nil {
			defer sqlDB.Close()
		}

		authService := services.NewAuthService(
			repository.NewUserRepository(database),
			tokens.NewMemoryRevocationStore(),
			cfg.JWTSecret,
			cfg.TokenTTL,
			cfg.BcryptCost,
		)

		user, err := authService.Register(cmd.Context(), req.Username, req.Password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created user %q with id %d\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	createUserCmd.Flags().StringVar(&createUsername, "username", "", "username of the new account")
	createUserCmd.Flags().StringVar(&createPassword, "password", "", "password of the new account")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createUserCmd)
}
