package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Options groups the configuration of every telemetry signal.
type Options struct {
	Tracing  Config
	Metrics  MetricsConfig
	Logs     LogsConfig
	Profiler ProfilerConfig
}

// Telemetry owns the providers started by Setup.
type Telemetry struct {
	Tracer   *TracerProvider
	Meter    *MeterProvider
	Logs     *LoggerProvider
	Profiler *Profiler
	Lookups  *LookupMetrics
}

// Setup starts the profiler first so that span profiles can attach to the tracer.
// Providers already started are shut down if a later one fails.
func Setup(ctx context.Context, opts Options, logger *zap.Logger) (*Telemetry, error) {
	t := &Telemetry{}
	var err error

	if t.Profiler, err = NewProfiler(opts.Profiler, logger); err != nil {
		return nil, err
	}
	if t.Tracer, err = NewTracerProvider(ctx, opts.Tracing, logger); err != nil {
		_ = t.Shutdown(ctx)
		return nil, err
	}
	if t.Profiler.IsEnabled() {
		if err = t.Tracer.EnableSpanProfiles(); err != nil {
			_ = t.Shutdown(ctx)
			return nil, err
		}
	}
	if t.Meter, err = NewMeterProvider(ctx, opts.Metrics, logger); err != nil {
		_ = t.Shutdown(ctx)
		return nil, err
	}
	if t.Logs, err = NewLoggerProvider(ctx, opts.Logs, logger); err != nil {
		_ = t.Shutdown(ctx)
		return nil, err
	}
	if t.Lookups, err = NewLookupMetrics(t.Meter.Meter("invoice-api/application")); err != nil {
		_ = t.Shutdown(ctx)
		return nil, fmt.Errorf("failed to register lookup metrics: %w", err)
	}
	return t, nil
}

// Shutdown flushes and stops every started provider, in reverse start order.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.Logs != nil {
		errs = append(errs, t.Logs.Shutdown(ctx))
	}
	if t.Meter != nil {
		errs = append(errs, t.Meter.Shutdown(ctx))
	}
	if t.Tracer != nil {
		errs = append(errs, t.Tracer.Shutdown(ctx))
	}
	if t.Profiler != nil {
		errs = append(errs, t.Profiler.Stop())
	}
	return errors.Join(errs...)
}
