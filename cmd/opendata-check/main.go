// Package main provides the CLI entry point for opendata-check.
package main

import (
	"errors"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errFindings is returned by validate --strict when the file has findings.
var errFindings = errors.New("validation found observations")

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "opendata-check",
		Short: "Check tabular files against open-data publication conventions",
		Long: `opendata-check validates CSV, TXT, TSV and XLSX files against the
naming, encoding and content conventions for open data publication,
and produces the PDF report of the findings.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML/JSON/TOML config file")

	rootCmd.AddCommand(newValidateCmd(), newReportCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger shared by all commands.
func setup() (*Config, *zap.Logger, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, NewLogger(cfg.Log), nil
}
