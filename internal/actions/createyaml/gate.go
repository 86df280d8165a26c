package createyamlaction

import (
	"fmt"
	"os"
	"time"

	"github.com/kobibe/tibco-developer-hub/internal/action"
	"github.com/kobibe/tibco-developer-hub/internal/config"
	"github.com/kobibe/tibco-developer-hub/internal/model"
	"github.com/kobibe/tibco-developer-hub/internal/yamldoc"
	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

const fileMode = 0o644

// gate is the single error boundary around serialize+write. Every failure in
// here is logged and then classified by failOnError.
func gate(log action.Logger, eff config.Effective, paths resolvedPaths) model.Outcome {
	start := time.Now()
	outcome := model.Outcome{OutputPath: paths.OutputFilePath}

	err := persist(eff, paths.OutputFilePath)
	outcome.Duration = time.Since(start)
	outcome.Timestamp = time.Now()

	if err == nil {
		log.Info(fmt.Sprintf("Created Yaml file with name: %s", eff.OutputFile))
		outcome.Status = model.StatusSucceeded
		return outcome
	}

	log.Error(nil, "Error while creating Yaml file")
	log.Error(err, err.Error())

	outcome.Err = err
	if eff.FailOnError {
		outcome.Status = model.StatusFailedHard
	} else {
		outcome.Status = model.StatusFailedSoft
	}
	return outcome
}

func persist(eff config.Effective, path string) error {
	doc, err := yamldoc.Marshal(eff.OutputStructure)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, doc, fileMode); err != nil {
		return tibcoerrors.NewWriteError(path, err)
	}
	return nil
}
