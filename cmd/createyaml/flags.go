package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateRunOptions(opts runOptions) error {
	if strings.TrimSpace(opts.ActionID) == "" {
		return fmt.Errorf("action id is required")
	}

	if strings.TrimSpace(opts.WorkspacePath) == "" {
		return fmt.Errorf("workspace is required")
	}
	ws, err := filepath.Abs(opts.WorkspacePath)
	if err != nil {
		return fmt.Errorf("resolve workspace path: %w", err)
	}
	info, err := os.Stat(ws)
	if err != nil {
		return fmt.Errorf("workspace does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("workspace %s is not a directory", ws)
	}

	if strings.TrimSpace(opts.InputPath) == "" {
		return fmt.Errorf("input file is required")
	}
	in, err := filepath.Abs(opts.InputPath)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	info, err = os.Stat(in)
	if err != nil {
		return fmt.Errorf("input file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory", in)
	}

	return nil
}
