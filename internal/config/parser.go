package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseInput loads an action input document (YAML or JSON) from disk and
// validates it.
func ParseInput(path string) (*CreateYAMLInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tibcoerrors.NewParseError(path, 0, err)
	}
	return DecodeInput(path, data)
}

// DecodeInput decodes and validates an input document. name is only used to
// label parse errors.
func DecodeInput(name string, data []byte) (*CreateYAMLInput, error) {
	var in CreateYAMLInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, tibcoerrors.NewParseError(name, extractLine(err), err)
	}

	if err := ValidateInput(&in); err != nil {
		return nil, err
	}

	return &in, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
