package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vmargs/internal/flags"
)

var (
	// Global flags
	verbose            bool
	ignoreUnrecognized bool
	format             string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vmargs",
	Short: "vmargs - VM startup argument resolution",
	Long: `vmargs resolves raw VM configuration from the command line, the
VM_TOOL_OPTIONS and VM_OPTIONS environment variables, and any referenced
options files into one validated runtime configuration: flags, system
properties, heap sizing, collector choice, compilation mode, and native
agent load lists.

A fatal classification (unknown option, expired option, conflicting
collector selection, unreconcilable heap bounds, ...) exits with status 2
and a diagnostic naming the offending token. Deprecated and obsolete
options are warned about and resolution continues.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&ignoreUnrecognized, "ignore-unrecognized", false, "demote unknown VM options to warnings")
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if _, classified := flags.KindOf(err); classified {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
