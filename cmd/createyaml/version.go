package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kobibe/tibco-developer-hub/internal/action"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd(registry *action.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and bundled action versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "createyaml %s (commit %s, built %s)\n", version, commit, date)
			for _, meta := range registry.List() {
				fmt.Fprintf(out, "  %s %s\n", meta.ID, meta.Version)
			}
			return nil
		},
	}

	return cmd
}
