package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/invoiceapi/backend/internal/infrastructure/config"
	"github.com/invoiceapi/backend/internal/interfaces/http/handler"
	"github.com/invoiceapi/backend/internal/interfaces/http/server"
)

const appName = "invoice-api"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Invoice API - mock invoice and process-status backend for RPA testing",
		Long: `Serves a fixed set of invoices and process-status entries over HTTP.

Running without a subcommand is the same as "serve".`,
		Version:       handler.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: config.toml in ., ./config or /etc/invoice-api)")
	flags.String("host", "", "bind host (default 0.0.0.0)")
	flags.Int("port", 0, "bind port (default 8000)")
	flags.String("error-mode", "", "lookup failure reporting: strict (404/400) or legacy (200 with error body)")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRoutesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the Invoice API.

Examples:
  invoice-api serve
  invoice-api serve --port 9000 --error-mode legacy
  INVOICE_API_APP_PORT=9000 invoice-api serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the API route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			invoices, processes, err := buildServices(nil)
			if err != nil {
				return err
			}
			srv, err := server.New(server.Options{
				Config:    cfg,
				Logger:    zap.NewNop(),
				Invoices:  invoices,
				Processes: processes,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tDESCRIPTION")
			for _, r := range srv.Routes() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Method, r.Path, r.Description)
			}
			return w.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, handler.Version)
		},
	}
}

// loadConfig reads configuration with the command's flags taking precedence
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := []config.Option{config.WithFlags(cmd.Flags())}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
