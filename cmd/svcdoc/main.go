// Package main provides the CLI entry point for svcdoc.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fedpa/svcdoc-go/internal/config"
	"github.com/fedpa/svcdoc-go/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	envPath    string
	logLevel   string
	logFormat  string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
	log *slog.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "svcdoc",
		Short: "Generate service documentation from Excel workbooks",
		Long: `svcdoc turns service documentation spreadsheets into Markdown.

Each data row of the selected sheets becomes one Markdown document. The
template version of a sheet (v1 or v2) is detected from its header row.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "Environment file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json")

	rootCmd.AddCommand(
		newSheetsCommand(),
		newConvertCommand(),
		newPreviewCommand(),
		newImportParamsCommand(),
		newServeCommand(),
	)
	return rootCmd
}

// setup loads the configuration and the logger. Flags win over config.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath, envPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log = logger.New(os.Stderr, logger.Config{Level: level, Format: cfg.Log.Format})
	return nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
