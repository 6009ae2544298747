// Package main provides the CLI entry point for fundalloc.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/fundalloc-go/internal/config"
	"github.com/ukaji3/fundalloc-go/internal/logging"
)

var (
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fundalloc",
		Short: "Extract asset allocation from mutual fund portfolio disclosures",
		Long: `fundalloc reads monthly portfolio disclosure workbooks published by
mutual fund houses and reports the fund's asset allocation by category.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: $FUNDALLOC_CONFIG or ./fundalloc.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newExtractCmd(), newInstitutionsCmd(), newServeCmd())
	return rootCmd
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}

	l, err := logging.New(c.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	slog.SetDefault(l)

	cfg, logger = c, l
	return nil
}
