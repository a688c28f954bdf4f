package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceapi/backend/internal/infrastructure/config"
	"github.com/invoiceapi/backend/internal/interfaces/http/handler"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoutesCommand(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "METHOD"))

	for _, route := range []string{
		"/invoices/:invoice_number",
		"/invoices/vendor/:vendor_number",
		"/processes/:process_id",
		"/processes/type/:document_type",
	} {
		assert.Contains(t, out, route)
	}
	// header + 7 contract routes + health + 2 system routes
	assert.Len(t, lines, 11)
}

func TestRoutesCommand_RejectsBadFlags(t *testing.T) {
	_, err := execute(t, "routes", "--error-mode", "lenient")
	assert.Error(t, err)

	_, err = execute(t, "routes", "--port", "70000")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "invoice-api "+handler.Version+"\n", out)
}

func TestTelemetryOptions(t *testing.T) {
	cfg := &config.Config{
		Telemetry: config.TelemetryConfig{
			Enabled:           true,
			CollectorEndpoint: "otel:4317",
			SamplingRatio:     0.5,
			ServiceName:       "invoice-api",
			MetricsEnabled:    true,
		},
		Profiling: config.ProfilingConfig{Enabled: true, ServerAddress: "http://pyroscope:4040"},
	}

	opts := telemetryOptions(cfg)
	assert.True(t, opts.Tracing.Enabled)
	assert.Equal(t, 0.5, opts.Tracing.SamplingRatio)
	assert.True(t, opts.Metrics.Enabled)
	assert.False(t, opts.Logs.Enabled)
	assert.True(t, opts.Profiler.Enabled)

	cfg.Telemetry.Enabled = false
	opts = telemetryOptions(cfg)
	assert.False(t, opts.Metrics.Enabled)
}

func TestBuildServices(t *testing.T) {
	invoices, processes, err := buildServices(nil)
	require.NoError(t, err)

	n, err := invoices.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = processes.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
