package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	invoiceapp "github.com/invoiceapi/backend/internal/application/invoice"
	processapp "github.com/invoiceapi/backend/internal/application/process"
	"github.com/invoiceapi/backend/internal/infrastructure/config"
	"github.com/invoiceapi/backend/internal/infrastructure/logger"
	"github.com/invoiceapi/backend/internal/infrastructure/persistence"
	"github.com/invoiceapi/backend/internal/infrastructure/telemetry"
	"github.com/invoiceapi/backend/internal/interfaces/http/server"
)

const telemetryShutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
	baseCore, err := logger.NewCore(logCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := zap.New(baseCore, logger.Options()...)
	defer func() {
		_ = log.Sync()
	}()

	tel, err := telemetry.Setup(cmd.Context(), telemetryOptions(cfg), log)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(ctx); err != nil {
			log.Error("Error shutting down telemetry", zap.Error(err))
		}
	}()

	if tel.Logs.IsEnabled() {
		otelCore := telemetry.NewZapOTELCore(telemetry.ZapBridgeConfig{
			ServiceName:    cfg.Telemetry.ServiceName,
			LoggerProvider: tel.Logs,
			Level:          logger.ParseLevel(cfg.Log.Level),
		})
		log = telemetry.NewBridgedLogger(baseCore, otelCore, logger.Options()...)
	}

	log.Info("Starting Invoice API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("addr", cfg.App.Address()),
		zap.String("error_mode", cfg.API.ErrorMode),
	)

	invoices, processes, err := buildServices(tel.Lookups)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Options{
		Config:    cfg,
		Logger:    log,
		Invoices:  invoices,
		Processes: processes,
		Telemetry: tel,
	})
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

// buildServices loads the fixed data set. lookups may be nil.
func buildServices(lookups *telemetry.LookupMetrics) (*invoiceapp.InvoiceService, *processapp.ProcessService, error) {
	invoiceRepo, err := persistence.NewMemoryInvoiceRepository(persistence.DefaultInvoiceSeeds())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	processRepo, err := persistence.NewMemoryProcessRepository(persistence.DefaultProcessSeeds())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load processes: %w", err)
	}

	invoiceService := invoiceapp.NewInvoiceService(invoiceRepo)
	invoiceService.SetLookupMetrics(lookups)
	processService := processapp.NewProcessService(processRepo)
	processService.SetLookupMetrics(lookups)

	return invoiceService, processService, nil
}

func telemetryOptions(cfg *config.Config) telemetry.Options {
	t := cfg.Telemetry
	return telemetry.Options{
		Tracing: telemetry.Config{
			Enabled:           t.Enabled,
			CollectorEndpoint: t.CollectorEndpoint,
			SamplingRatio:     t.SamplingRatio,
			ServiceName:       t.ServiceName,
			Insecure:          t.Insecure,
		},
		Metrics: telemetry.MetricsConfig{
			Enabled:           t.Enabled && t.MetricsEnabled,
			CollectorEndpoint: t.CollectorEndpoint,
			ExportInterval:    t.MetricsExportInterval,
			ServiceName:       t.ServiceName,
			Insecure:          t.Insecure,
		},
		Logs: telemetry.LogsConfig{
			Enabled:           t.Enabled && t.LogsEnabled,
			CollectorEndpoint: t.CollectorEndpoint,
			ServiceName:       t.ServiceName,
			Insecure:          t.Insecure,
		},
		Profiler: telemetry.ProfilerConfig{
			Enabled:         cfg.Profiling.Enabled,
			ServerAddress:   cfg.Profiling.ServerAddress,
			ApplicationName: cfg.Profiling.ApplicationName,
			ProfileTypes:    cfg.Profiling.ProfileTypes,
		},
	}
}
