package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GP_API_APP_ID", " app ")
	t.Setenv("GP_API_APP_KEY", "key")
	t.Setenv("GP_API_ENVIRONMENT", "PRODUCTION")
	t.Setenv("GP_API_TIMEOUT", "30")
	t.Setenv("GP_API_SECONDS_TO_EXPIRE", "600")
	t.Setenv("GP_API_INTERVAL_TO_EXPIRE", "1_HOUR")
	t.Setenv("REPORT_CALLBACK_URL", "https://example.com/hook")
	t.Setenv("GP_API_DEBUG", "true")
	t.Setenv("GP_API_ACCESS_TOKEN", "")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	require.Equal(t, "app", cfg.GpAPI.AppID)
	require.Equal(t, "key", cfg.GpAPI.AppKey)
	require.Equal(t, entities.EnvironmentProduction, cfg.GpAPI.Environment)
	require.Equal(t, 30*time.Second, cfg.GpAPI.Timeout)
	require.Equal(t, 600, cfg.GpAPI.SecondsToExpire)
	require.Equal(t, entities.IntervalToExpire("1_HOUR"), cfg.GpAPI.IntervalToExpire)
	require.Nil(t, cfg.GpAPI.AccessTokenInfo)
	require.Equal(t, "https://example.com/hook", cfg.CallbackURL)
	require.True(t, cfg.Debug)
	require.NoError(t, cfg.GpAPI.Validate())
}

func TestLoadAccessToken(t *testing.T) {
	t.Setenv("GP_API_ACCESS_TOKEN", "tok")
	t.Setenv("GP_API_DATA_ACCOUNT_NAME", "Settlement Reporting")
	t.Setenv("GP_API_TIMEOUT", "1m30s")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	require.NotNil(t, cfg.GpAPI.AccessTokenInfo)
	require.Equal(t, "tok", cfg.GpAPI.AccessTokenInfo.Token)
	require.Equal(t, "Settlement Reporting", cfg.GpAPI.AccessTokenInfo.DataAccountName)
	require.Equal(t, 90*time.Second, cfg.GpAPI.Timeout)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GP_API_APP_ID=from-file\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("GP_API_APP_ID", "")
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("GP_API_APP_ID"))
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.GpAPI.AppID)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	tests := map[string]string{
		"GP_API_TIMEOUT":           "soon",
		"GP_API_SECONDS_TO_EXPIRE": "ten",
		"GP_API_DEBUG":             "maybe",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load(missingEnvFile(t))
			require.ErrorContains(t, err, key)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.ErrorLevel))

	_, err = (&Config{LogLevel: "chatty"}).NewLogger()
	require.ErrorContains(t, err, "LOG_LEVEL")
}
