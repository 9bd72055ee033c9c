package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"vmargs/internal/config"
	"vmargs/internal/sysinfo"
)

// osFileReader is the production file-access collaborator for options-file
// expansion and compile filter files.
type osFileReader struct{}

func (osFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// resolveCmd resolves the given VM options and prints the configuration
var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] -- [vm options and command...]",
	Short: "Resolve VM options into the final runtime configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := runResolution(args)
		surfaceWarnings(ctx)
		if err != nil {
			return err
		}
		return printSummary(cmd, ctx.Summarize())
	},
}

func init() {
	resolveCmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
}

// runResolution wires the production collaborators into the pipeline.
func runResolution(args []string) (*config.Context, error) {
	if ignoreUnrecognized {
		args = append([]string{"-XX:+IgnoreUnrecognizedVMOptions"}, args...)
	}
	return config.Resolve(args, os.Getenv, osFileReader{}, sysinfo.New())
}

// surfaceWarnings logs every accumulated diagnostic. Warnings never block
// startup, so they are reported even when resolution later failed.
func surfaceWarnings(ctx *config.Context) {
	if ctx == nil || logger == nil {
		return
	}
	for _, w := range ctx.Warnings() {
		logger.Warn(w.Message,
			zap.String("kind", w.Kind.String()),
			zap.String("token", w.Token))
	}
}

func printSummary(cmd *cobra.Command, s config.Summary) error {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	case "json":
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	default:
		return fmt.Errorf("unknown output format %q (valid: yaml, json)", format)
	}
	return nil
}
