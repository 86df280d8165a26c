package createyamlaction

import (
	"errors"
	"io/fs"
	"os"

	"github.com/kobibe/tibco-developer-hub/internal/action"
	"github.com/kobibe/tibco-developer-hub/internal/config"
	"github.com/kobibe/tibco-developer-hub/internal/model"
	"github.com/kobibe/tibco-developer-hub/internal/yamldoc"
	"github.com/kobibe/tibco-developer-hub/pkg/diff"
	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

// Preview renders the document and compares it with the file currently on
// disk without writing anything. It does not apply failOnError: every error
// is returned.
func Preview(actx *action.Context, in *config.CreateYAMLInput) (*model.Preview, error) {
	if err := actx.Ctx().Err(); err != nil {
		return nil, err
	}

	eff, paths, err := normalize(actx, in)
	if err != nil {
		return nil, err
	}

	doc, err := yamldoc.Marshal(eff.OutputStructure)
	if err != nil {
		return nil, err
	}

	preview := &model.Preview{OutputPath: paths.OutputFilePath, Document: doc}

	existing, err := os.ReadFile(paths.OutputFilePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		preview.Status = model.StatusWouldCreate
		preview.Diff = diff.GenerateUnifiedDiff(nil, doc, "/dev/null", eff.OutputFile)
	case err != nil:
		return nil, tibcoerrors.NewWriteError(paths.OutputFilePath, err)
	default:
		preview.Diff = diff.GenerateUnifiedDiff(existing, doc, eff.OutputFile, eff.OutputFile+" (rendered)")
		if preview.Diff == "" {
			preview.Status = model.StatusUnchanged
		} else {
			preview.Status = model.StatusWouldUpdate
		}
	}

	return preview, nil
}
