package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppURL                 string
	DatabaseDriver         string
	DatabaseDSN            string
	JWTSecret              string
	TokenTTL               time.Duration
	BcryptCost             int
	TokenStore             string
	RedisAddr              string
	RedisKeyPrefix         string
	Log                    LogConfig
	ShutdownTimeoutSeconds int
}

type LogConfig struct {
	Level      string
	Format     string
	Output     string
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	var errs []error
	intVar := func(key string, defaultVal int) int {
		v, err := getEnvAsInt(key, defaultVal)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}
	boolVar := func(key string, defaultVal bool) bool {
		v, err := getEnvAsBool(key, defaultVal)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDriver:         getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:            getEnv("DATABASE_DSN", "todos.db"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		TokenTTL:               time.Duration(intVar("JWT_TTL_MINUTES", 24*60)) * time.Minute,
		BcryptCost:             intVar("BCRYPT_COST", 10),
		TokenStore:             getEnv("TOKEN_STORE", "memory"),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisKeyPrefix:         getEnv("REDIS_KEY_PREFIX", "todo_api:revoked:"),
		ShutdownTimeoutSeconds: intVar("SHUTDOWN_TIMEOUT_SECONDS", 20),
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    intVar("LOG_MAX_SIZE", 100),
			MaxBackups: intVar("LOG_MAX_BACKUPS", 5),
			MaxAge:     intVar("LOG_MAX_AGE", 30),
			Compress:   boolVar("LOG_COMPRESS", false),
		},
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	var errs []error

	if cfg.DatabaseDriver != "sqlite" && cfg.DatabaseDriver != "postgres" {
		errs = append(errs, errors.New("DATABASE_DRIVER must be sqlite or postgres"))
	}
	if cfg.DatabaseDSN == "" {
		errs = append(errs, errors.New("DATABASE_DSN must not be empty"))
	}
	if len(cfg.JWTSecret) < 32 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 32 characters"))
	}
	if cfg.TokenTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL_MINUTES must be greater than 0"))
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		errs = append(errs, errors.New("BCRYPT_COST must be between 4 and 31"))
	}
	if cfg.TokenStore != "memory" && cfg.TokenStore != "redis" {
		errs = append(errs, errors.New("TOKEN_STORE must be memory or redis"))
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0"))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return defaultVal, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}

func getEnvAsBool(key string, defaultVal bool) (bool, error) {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return defaultVal, fmt.Errorf("invalid boolean value for %s", key)
		}
		return b, nil
	}
	return defaultVal, nil
}
