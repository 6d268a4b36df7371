// Package main provides the sbomdiff CLI for comparing two CycloneDX SBOMs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ochairo/sbomdiff/internal/config"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces"
	"github.com/ochairo/sbomdiff/internal/external-adapters/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sbomdiff",
		Short: "Compare two CycloneDX SBOMs",
		Long: `sbomdiff - Compare two CycloneDX SBOMs

Classifies components as added, removed or modified, writes the diff as XML or
JSON, an SBOM holding only the added and modified components, and an HTML report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String(config.KeyLogLevel, config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool(config.KeyLogJSON, false, "Emit logs as JSON")

	root.AddCommand(newCompareCmd(), newVerifyCmd(), newVersionCmd())
	return root
}

// loadViper builds the layered configuration for cmd: defaults, config file,
// environment and finally the command's flags.
func loadViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := config.New()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := config.ReadFile(v, configPath); err != nil {
		return nil, err
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

func newLogger(level string, json bool, out io.Writer) (interfaces.Logger, error) {
	return logging.NewLogger(logging.Options{Level: level, JSON: json, Output: out})
}
