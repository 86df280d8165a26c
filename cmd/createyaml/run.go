package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kobibe/tibco-developer-hub/internal/action"
	createyamlaction "github.com/kobibe/tibco-developer-hub/internal/actions/createyaml"
	"github.com/kobibe/tibco-developer-hub/internal/config"
	"github.com/kobibe/tibco-developer-hub/internal/gitstage"
	"github.com/kobibe/tibco-developer-hub/internal/logger"
	"github.com/kobibe/tibco-developer-hub/internal/report"
	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

type runOptions struct {
	ActionID      string
	WorkspacePath string
	InputPath     string
	DryRun        bool
	Verbose       bool
	Stage         bool
	HumanReadable bool
}

func newRunCmd(root *rootFlags, registry *action.Registry) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an action against a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DryRun = root.dryRun
			opts.Verbose = root.verbose
			opts.HumanReadable = isTerminal(cmd.ErrOrStderr())

			if err := validateRunOptions(opts); err != nil {
				return err
			}

			return runAction(cmd, registry, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ActionID, "action", "a", createyamlaction.ID, "Identifier of the action to run")
	cmd.Flags().StringVarP(&opts.WorkspacePath, "workspace", "w", "", "Workspace directory the action writes into")
	cmd.Flags().StringVarP(&opts.InputPath, "input", "i", "", "Path to the action input document")
	cmd.Flags().BoolVar(&opts.Stage, "stage", false, "Stage the written file when the workspace is a git repository")
	cmd.MarkFlagRequired("workspace") //nolint:errcheck
	cmd.MarkFlagRequired("input")     //nolint:errcheck

	return cmd
}

func runAction(cmd *cobra.Command, registry *action.Registry, opts runOptions) error {
	act, err := registry.Get(opts.ActionID)
	if err != nil {
		return err
	}

	in, err := config.ParseInput(opts.InputPath)
	if err != nil {
		return err
	}

	workspace, err := filepath.Abs(opts.WorkspacePath)
	if err != nil {
		return fmt.Errorf("resolve workspace path: %w", err)
	}

	level := "info"
	if opts.Verbose {
		level = "debug"
	}
	base, err := logger.New(logger.Options{Level: level, HumanReadable: opts.HumanReadable, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	taskID := uuid.NewString()
	log := base.ForTask(opts.ActionID, taskID)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	actx := &action.Context{
		Context:       ctx,
		WorkspacePath: workspace,
		Input:         in,
		Logger:        log,
	}

	if opts.DryRun {
		previewer, ok := act.(action.Previewer)
		if !ok {
			return tibcoerrors.NewActionError(opts.ActionID, fmt.Errorf("dry run is not supported"))
		}
		preview, err := previewer.Preview(actx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Preview(taskID, preview))
		return nil
	}

	runner, ok := act.(action.Runner)
	if !ok {
		return act.Handler(actx)
	}

	outcome, err := runner.Run(actx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Outcome(taskID, outcome))

	if opts.Stage && !outcome.Failed() {
		if _, err := gitstage.Stage(workspace, filepath.Dir(outcome.OutputPath), outcome.OutputPath, log); err != nil {
			return err
		}
	}

	return outcome.Propagated()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
