package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no stray config.toml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "invoice-api", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0", cfg.App.Host)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.App.Address())

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)

	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodySize)
	assert.False(t, cfg.HTTP.RateLimitEnabled)
	assert.Equal(t, []string{"GET", "OPTIONS"}, cfg.HTTP.CORSAllowMethods)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)

	assert.Equal(t, ErrorModeStrict, cfg.API.ErrorMode)
	assert.Empty(t, cfg.API.BasePath)
	assert.True(t, cfg.Swagger.Enabled)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.CollectorEndpoint)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
	assert.Equal(t, "invoice-api", cfg.Telemetry.ServiceName)
	assert.True(t, cfg.Telemetry.Insecure)
	assert.Equal(t, 60*time.Second, cfg.Telemetry.MetricsExportInterval)

	assert.False(t, cfg.Profiling.Enabled)
	assert.Equal(t, "invoice-api", cfg.Profiling.ApplicationName)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
[app]
name = "rpa-mock"
port = 9000

[api]
error_mode = "legacy"

[http]
rate_limit_enabled = true
rate_limit_requests = 10
rate_limit_window = "30s"
cors_allow_origins = ["http://localhost:3000"]

[telemetry]
sampling_ratio = 0.25
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "rpa-mock", cfg.App.Name)
	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, ErrorModeLegacy, cfg.API.ErrorMode)
	assert.True(t, cfg.HTTP.RateLimitEnabled)
	assert.Equal(t, 10, cfg.HTTP.RateLimitRequests)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RateLimitWindow)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.CORSAllowOrigins)
	assert.Equal(t, 0.25, cfg.Telemetry.SamplingRatio)
	assert.Equal(t, "rpa-mock", cfg.Telemetry.ServiceName)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	isolate(t)
	other := t.TempDir()
	path := writeConfig(t, other, "[app]\nport = 8100\n")

	cfg, err := Load(WithConfigFile(path))
	require.NoError(t, err)
	assert.Equal(t, 8100, cfg.App.Port)

	_, err = Load(WithConfigFile(filepath.Join(other, "missing.toml")))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "[app]\nport = 9000\n")

	t.Setenv("INVOICE_API_APP_PORT", "9100")
	t.Setenv("INVOICE_API_API_ERROR_MODE", "legacy")
	t.Setenv("INVOICE_API_SWAGGER_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.App.Port)
	assert.Equal(t, ErrorModeLegacy, cfg.API.ErrorMode)
	assert.False(t, cfg.Swagger.Enabled)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("INVOICE_API_APP_PORT", "9100")

	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flags.String("host", "", "")
	flags.Int("port", 0, "")
	flags.String("error-mode", "", "")
	require.NoError(t, flags.Parse([]string{"--host", "127.0.0.1", "--port", "9200"}))

	cfg, err := Load(WithFlags(flags))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9200", cfg.App.Address())
	// unset flags fall through to defaults
	assert.Equal(t, ErrorModeStrict, cfg.API.ErrorMode)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "port out of range",
			env:     map[string]string{"INVOICE_API_APP_PORT": "70000"},
			wantErr: "app.port",
		},
		{
			name:    "unknown error mode",
			env:     map[string]string{"INVOICE_API_API_ERROR_MODE": "lenient"},
			wantErr: "api.error_mode",
		},
		{
			name:    "relative base path",
			env:     map[string]string{"INVOICE_API_API_BASE_PATH": "api"},
			wantErr: "api.base_path",
		},
		{
			name: "negative rate limit window",
			env: map[string]string{
				"INVOICE_API_HTTP_RATE_LIMIT_ENABLED": "true",
				"INVOICE_API_HTTP_RATE_LIMIT_WINDOW":  "-1m",
			},
			wantErr: "http.rate_limit_window",
		},
		{
			name:    "sampling ratio above one",
			env:     map[string]string{"INVOICE_API_TELEMETRY_SAMPLING_RATIO": "1.5"},
			wantErr: "sampling_ratio",
		},
		{
			name:    "profiling without server",
			env:     map[string]string{"INVOICE_API_PROFILING_ENABLED": "true"},
			wantErr: "profiling.server_address",
		},
		{
			name: "wildcard cors in production",
			env: map[string]string{
				"INVOICE_API_APP_ENV":                 "production",
				"INVOICE_API_HTTP_CORS_ALLOW_ORIGINS": "*",
			},
			wantErr: "cors_allow_origins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_WildcardCORSAllowedOutsideProduction(t *testing.T) {
	isolate(t)
	t.Setenv("INVOICE_API_HTTP_CORS_ALLOW_ORIGINS", "*")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowOrigins)
}
