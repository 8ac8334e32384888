// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/globalpayments/gpapi-go/pkg/gpapi"
	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

// Config is everything the Lambda and the CLI need to reach GP-API.
type Config struct {
	GpAPI          *gpapi.GpAPIConfig
	CallbackURL    string
	CallbackSecret string
	LogLevel       string
	Debug          bool
}

// Load reads the given .env files (".env" when none) and then the process
// environment. Missing files are ignored; variables already set win.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	timeout, err := durationEnv("GP_API_TIMEOUT")
	if err != nil {
		return nil, err
	}
	secondsToExpire, err := intEnv("GP_API_SECONDS_TO_EXPIRE")
	if err != nil {
		return nil, err
	}
	debug, err := boolEnv("GP_API_DEBUG")
	if err != nil {
		return nil, err
	}

	api := &gpapi.GpAPIConfig{
		Configuration: gpapi.Configuration{
			Timeout:     timeout,
			Environment: entities.Environment(strings.ToLower(env("GP_API_ENVIRONMENT"))),
			ServiceURL:  env("GP_API_SERVICE_URL"),
		},
		AppID:            env("GP_API_APP_ID"),
		AppKey:           env("GP_API_APP_KEY"),
		SecondsToExpire:  secondsToExpire,
		IntervalToExpire: entities.IntervalToExpire(env("GP_API_INTERVAL_TO_EXPIRE")),
		Channel:          entities.Channel(env("GP_API_CHANNEL")),
		Country:          env("GP_API_COUNTRY"),
	}

	if token := env("GP_API_ACCESS_TOKEN"); token != "" {
		api.AccessTokenInfo = &gpapi.AccessTokenInfo{
			Token:                            token,
			DataAccountName:                  env("GP_API_DATA_ACCOUNT_NAME"),
			TransactionProcessingAccountName: env("GP_API_TRANSACTION_ACCOUNT_NAME"),
		}
	}

	logLevel := env("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		GpAPI:          api,
		CallbackURL:    env("REPORT_CALLBACK_URL"),
		CallbackSecret: os.Getenv("REPORT_CALLBACK_SECRET"),
		LogLevel:       logLevel,
		Debug:          debug,
	}, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// durationEnv accepts Go durations ("30s") or a bare number of seconds.
func durationEnv(key string) (time.Duration, error) {
	v := env(key)
	if v == "" {
		return 0, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func intEnv(key string) (int, error) {
	v := env(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func boolEnv(key string) (bool, error) {
	v := env(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

// NewLogger builds a production zap logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
