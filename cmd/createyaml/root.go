package main

import (
	"github.com/spf13/cobra"

	"github.com/kobibe/tibco-developer-hub/internal/action"
)

type rootFlags struct {
	verbose bool
	dryRun  bool
}

func newRootCmd(registry *action.Registry) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "createyaml",
		Short:         "Run developer hub scaffolder actions against a local workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Preview the result without writing files")

	cmd.AddCommand(newRunCmd(flags, registry))
	cmd.AddCommand(newActionsCmd(registry))
	cmd.AddCommand(newVersionCmd(registry))

	return cmd
}
