package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kobibe/tibco-developer-hub/internal/action"
)

func newActionsCmd(registry *action.Registry) *cobra.Command {
	var showExamples bool

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List registered actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, meta := range registry.List() {
				fmt.Fprintf(out, "%s (v%s)\n  %s\n", meta.ID, meta.Version, meta.Description)
				if !showExamples {
					continue
				}
				for _, ex := range meta.Examples {
					fmt.Fprintf(out, "\n  # %s\n", ex.Description)
					for _, line := range strings.Split(strings.TrimRight(ex.Input, "\n"), "\n") {
						fmt.Fprintf(out, "  %s\n", line)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showExamples, "examples", false, "Print the documented example inputs")

	return cmd
}
