package main

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var traceKeys = []string{
	"cssattr.style",
	"cssattr.scan",
	"cssattr.resolve",
	"cssattr.component",
	"cssattr.render",
	"cssattr.ruleset",
}

type rootFlags struct {
	rules   string
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cssattr",
		Short:         "cssattr computes class and style attributes from declarative rule sets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				for _, key := range traceKeys {
					tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
				}
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.rules, "rules", "r", "cssattr.yaml", "YAML rule set to load")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Trace rule resolution")

	cmd.AddCommand(newClassCmd(flags))
	cmd.AddCommand(newStyleCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDescribeCmd(flags))
	cmd.AddCommand(newListCmd(flags))

	return cmd
}
