package createyamlaction

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobibe/tibco-developer-hub/internal/config"
	"github.com/kobibe/tibco-developer-hub/internal/model"
	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

func TestPreview(t *testing.T) {
	t.Parallel()

	actx, _ := newContext(t, nil)
	in := &config.CreateYAMLInput{OutputStructure: catalogEntity()}
	target := filepath.Join(actx.WorkspacePath, config.DefaultOutputFile)

	created, err := Preview(actx, in)
	require.NoError(t, err)
	require.Equal(t, model.StatusWouldCreate, created.Status)
	require.Equal(t, target, created.OutputPath)
	require.Contains(t, created.Diff, "--- /dev/null")
	require.Contains(t, created.Diff, "+kind: Component")
	require.NoFileExists(t, target)

	require.NoError(t, os.WriteFile(target, created.Document, 0o644))

	unchanged, err := Preview(actx, in)
	require.NoError(t, err)
	require.Equal(t, model.StatusUnchanged, unchanged.Status)
	require.Empty(t, unchanged.Diff)

	in.OutputStructure.Set("kind", "API")
	updated, err := Preview(actx, in)
	require.NoError(t, err)
	require.Equal(t, model.StatusWouldUpdate, updated.Status)
	require.Contains(t, updated.Diff, "-kind: Component")
	require.Contains(t, updated.Diff, "+kind: API")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, created.Document, data)
}

func TestPreviewReturnsEveryError(t *testing.T) {
	t.Parallel()

	actx, log := newContext(t, nil)

	_, err := Preview(actx, &config.CreateYAMLInput{OutputStructure: cyclicStructure()})
	var serErr *tibcoerrors.SerializationError
	require.ErrorAs(t, err, &serErr)

	_, err = Preview(actx, &config.CreateYAMLInput{SourcePath: strPtr("../outside"), OutputStructure: catalogEntity()})
	var pathErr *tibcoerrors.PathResolutionError
	require.ErrorAs(t, err, &pathErr)

	require.Empty(t, log.messages("error"))
}
