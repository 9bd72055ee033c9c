package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCmd validates VM options without printing the configuration
var checkCmd = &cobra.Command{
	Use:   "check [flags] -- [vm options and command...]",
	Short: "Validate VM options without printing the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := runResolution(args)
		surfaceWarnings(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "configuration OK: %s collector, %s mode, %d warning(s)\n",
			ctx.GC, ctx.Mode, len(ctx.Warnings()))
		return nil
	},
}
