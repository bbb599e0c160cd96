package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leighmacdonald/steamwebapi/internal/config"
	"github.com/leighmacdonald/steamwebapi/pkg/log"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
	"github.com/stretchr/testify/require"
)

const testConfig = `steam_key: " ABCDEF0123456789 "
base_url: http://localhost:8080
http:
  timeout: 2s
  retain_payload: true
logging:
  level: debug
  file: steamwebapi.log
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "steamwebapi.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestReadFile(t *testing.T) {
	cfg, err := config.Read(writeConfig(t, testConfig))
	require.NoError(t, err)
	require.Equal(t, "ABCDEF0123456789", cfg.SteamKey)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.Equal(t, 2*time.Second, cfg.HTTP.Timeout)
	require.True(t, cfg.HTTP.RetainPayload)
	require.Equal(t, webapi.DefaultUserAgent, cfg.HTTP.UserAgent)
	require.False(t, cfg.HTTP.Metrics)

	require.Equal(t, webapi.Config{
		BaseURL:       "http://localhost:8080",
		Timeout:       2 * time.Second,
		UserAgent:     webapi.DefaultUserAgent,
		RetainPayload: true,
	}, cfg.WebAPI())

	require.Equal(t, log.Options{
		Level:   log.Debug,
		File:    "steamwebapi.log",
		Version: "v1.0.0",
	}, cfg.LogOptions("v1.0.0"))
}

func TestReadEnvOverride(t *testing.T) {
	t.Setenv("STEAMWEBAPI_STEAM_KEY", "fromenv")
	t.Setenv("STEAMWEBAPI_HTTP_TIMEOUT", "45s")

	cfg, err := config.Read(writeConfig(t, testConfig))
	require.NoError(t, err)
	require.Equal(t, "fromenv", cfg.SteamKey)
	require.Equal(t, 45*time.Second, cfg.HTTP.Timeout)
}

func TestReadMissingFile(t *testing.T) {
	_, err := config.Read(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, config.ErrReadConfig)
}

func TestReadInvalidDuration(t *testing.T) {
	_, err := config.Read(writeConfig(t, "http:\n  timeout: soon\n"))
	require.ErrorIs(t, err, config.ErrFormatConfig)
}
