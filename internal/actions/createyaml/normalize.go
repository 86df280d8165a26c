package createyamlaction

import (
	"fmt"
	"strings"

	"github.com/kobibe/tibco-developer-hub/internal/action"
	"github.com/kobibe/tibco-developer-hub/internal/config"
	"github.com/kobibe/tibco-developer-hub/internal/workspace"
)

type resolvedPaths struct {
	SourceDir      string
	OutputFilePath string
}

// normalize applies defaults, emits the diagnostic log lines and resolves
// both paths. Any error here is fatal regardless of failOnError.
func normalize(actx *action.Context, in *config.CreateYAMLInput) (config.Effective, resolvedPaths, error) {
	log := actx.Log()
	eff := in.Resolve()

	log.Info(fmt.Sprintf("Source path relative to workspace: %s", eff.SourcePath))
	log.Info(fmt.Sprintf("Fail on error: %s", titleBool(eff.FailOnError)))
	log.Info(fmt.Sprintf("Output File name: %s", eff.OutputFile))
	log.Debug(fmt.Sprintf("Output Structure: %d top-level keys [%s]", eff.OutputStructure.Len(), strings.Join(eff.OutputStructure.Keys(), ", ")))

	sourceDir, err := workspace.SafeJoin(actx.WorkspacePath, eff.SourcePath)
	if err != nil {
		return eff, resolvedPaths{}, err
	}
	log.Info(fmt.Sprintf("Final workspace path: %s", sourceDir))

	outputPath, err := workspace.SafeJoin(sourceDir, eff.OutputFile)
	if err != nil {
		return eff, resolvedPaths{}, err
	}

	return eff, resolvedPaths{SourceDir: sourceDir, OutputFilePath: outputPath}, nil
}

func titleBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
