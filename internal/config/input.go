package config

import (
	"fmt"
	"reflect"

	"github.com/kobibe/tibco-developer-hub/internal/yamldoc"
	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

// DefaultOutputFile is written when the input does not name an output file.
const DefaultOutputFile = "catalog-info.yaml"

// CreateYAMLInput is the parameter set accepted by the create-yaml action.
// Optional fields are pointers so an absent value can be told apart from an
// explicit one; Resolve applies the defaults.
type CreateYAMLInput struct {
	SourcePath      *string         `yaml:"sourcePath,omitempty" validate:"omitempty,nonul"`
	FailOnError     *bool           `yaml:"failOnError,omitempty"`
	OutputFile      *string         `yaml:"outputFile,omitempty" validate:"omitempty,nonul"`
	OutputStructure *yamldoc.Record `yaml:"outputStructure" validate:"required"`
}

// Effective holds the input after defaults have been applied.
type Effective struct {
	SourcePath      string
	FailOnError     bool
	OutputFile      string
	OutputStructure *yamldoc.Record
}

// Resolve applies defaults. An empty sourcePath and an absent one both mean
// the workspace root; an empty outputFile falls back to DefaultOutputFile.
func (in *CreateYAMLInput) Resolve() Effective {
	eff := Effective{OutputFile: DefaultOutputFile}
	if in == nil {
		return eff
	}
	if in.SourcePath != nil {
		eff.SourcePath = *in.SourcePath
	}
	if in.FailOnError != nil {
		eff.FailOnError = *in.FailOnError
	}
	if in.OutputFile != nil && *in.OutputFile != "" {
		eff.OutputFile = *in.OutputFile
	}
	eff.OutputStructure = in.OutputStructure
	return eff
}

// FromRecord builds an input from an already decoded parameter record without
// serializing outputStructure, so values YAML cannot represent reach the
// action untouched. Unknown keys are ignored.
func FromRecord(params *yamldoc.Record) (*CreateYAMLInput, error) {
	if params == nil {
		return nil, tibcoerrors.NewValidationError("input", "input is nil", nil)
	}

	in := &CreateYAMLInput{}

	if raw, ok := params.Get("sourcePath"); ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return nil, typeError("sourcePath", "string", raw)
		}
		in.SourcePath = &s
	}

	if raw, ok := params.Get("failOnError"); ok && raw != nil {
		b, ok := raw.(bool)
		if !ok {
			return nil, typeError("failOnError", "boolean", raw)
		}
		in.FailOnError = &b
	}

	if raw, ok := params.Get("outputFile"); ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return nil, typeError("outputFile", "string", raw)
		}
		in.OutputFile = &s
	}

	if raw, ok := params.Get("outputStructure"); ok && raw != nil {
		switch v := raw.(type) {
		case *yamldoc.Record:
			in.OutputStructure = v
		case yamldoc.Record:
			in.OutputStructure = &v
		case map[string]any:
			in.OutputStructure = yamldoc.FromMap(v)
		default:
			return nil, typeError("outputStructure", "record", raw)
		}
	}

	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	return in, nil
}

func typeError(field, want string, got any) error {
	return tibcoerrors.NewValidationError(field, fmt.Sprintf("expected %s, got %s", want, reflect.TypeOf(got)), nil)
}
