package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-17"

	output, err := executeCommand(newTestRoot(t), "version")
	require.NoError(t, err)
	require.Contains(t, output, "createyaml 1.2.3 (commit abcdef1, built 2026-10-17)")
	require.Contains(t, output, "  tibco:create-yaml 1.0.0")
}
