package createyamlaction

import (
	"fmt"

	"github.com/kobibe/tibco-developer-hub/internal/action"
	"github.com/kobibe/tibco-developer-hub/internal/config"
	"github.com/kobibe/tibco-developer-hub/internal/model"
	"github.com/kobibe/tibco-developer-hub/internal/yamldoc"
	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

// ID is the identifier templates use to invoke the action.
const ID = "tibco:create-yaml"

type createYAMLAction struct{}

// New creates the create-yaml action.
func New() action.Action {
	return &createYAMLAction{}
}

var (
	_ action.Action    = (*createYAMLAction)(nil)
	_ action.Runner    = (*createYAMLAction)(nil)
	_ action.Previewer = (*createYAMLAction)(nil)
)

func (a *createYAMLAction) Metadata() action.Metadata {
	return action.Metadata{
		ID:          ID,
		Version:     "1.0.0",
		Description: "Tibco platform create yaml action, refer to examples for outputStructure schema",
		Examples:    Examples(),
	}
}

// Handler runs the action. Path resolution failures are always returned;
// serialization and write failures are returned only when failOnError is set.
func (a *createYAMLAction) Handler(actx *action.Context) error {
	outcome, err := a.Run(actx)
	if err != nil {
		return err
	}
	return outcome.Propagated()
}

// Run decodes actx.Input and executes the action.
func (a *createYAMLAction) Run(actx *action.Context) (model.Outcome, error) {
	in, err := decodeInput(actx.Input)
	if err != nil {
		return model.Outcome{}, err
	}
	return Execute(actx, in)
}

// Preview decodes actx.Input and renders the document without writing it.
func (a *createYAMLAction) Preview(actx *action.Context) (*model.Preview, error) {
	in, err := decodeInput(actx.Input)
	if err != nil {
		return nil, err
	}
	return Preview(actx, in)
}

// Execute normalizes the input and runs the serialize+write gate. The error
// return is reserved for failures outside the gate (cancellation and unsafe
// paths); gate failures are reported through the Outcome.
func Execute(actx *action.Context, in *config.CreateYAMLInput) (model.Outcome, error) {
	if err := actx.Ctx().Err(); err != nil {
		return model.Outcome{}, err
	}

	eff, paths, err := normalize(actx, in)
	if err != nil {
		return model.Outcome{}, err
	}

	return gate(actx.Log(), eff, paths), nil
}

func decodeInput(raw any) (*config.CreateYAMLInput, error) {
	switch in := raw.(type) {
	case *config.CreateYAMLInput:
		if err := config.ValidateInput(in); err != nil {
			return nil, err
		}
		return in, nil
	case config.CreateYAMLInput:
		return decodeInput(&in)
	case *yamldoc.Record:
		return config.FromRecord(in)
	case map[string]any:
		return config.FromRecord(yamldoc.FromMap(in))
	case nil:
		return nil, tibcoerrors.NewValidationError("input", "input is required", nil)
	default:
		return nil, tibcoerrors.NewValidationError("input", fmt.Sprintf("unsupported input type %T", raw), nil)
	}
}
