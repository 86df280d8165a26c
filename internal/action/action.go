package action

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/kobibe/tibco-developer-hub/internal/model"
)

var (
	semverPattern   = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	actionIDPattern = regexp.MustCompile(`^[a-z0-9-]+(:[a-z0-9-]+)*$`)
)

// Logger is the logging capability an action receives from its runner.
// *logger.Logger satisfies it.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Error(err error, msg string)
}

// Context is supplied by the runner for a single invocation. The action
// borrows it for the duration of the call and only ever calls the logger.
type Context struct {
	// Context carries the runner's cancellation. Nil means background.
	Context context.Context
	// WorkspacePath is the absolute sandbox root for all file operations.
	WorkspacePath string
	// Input holds the action parameters, already validated upstream.
	Input any
	Logger Logger
}

// Ctx returns the invocation's context.Context, never nil.
func (c *Context) Ctx() context.Context {
	if c == nil || c.Context == nil {
		return context.Background()
	}
	return c.Context
}

// Log returns the invocation's logger, discarding output when none was given.
func (c *Context) Log() Logger {
	if c == nil || c.Logger == nil {
		return NopLogger()
	}
	return c.Logger
}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string)        {}
func (nopLogger) Info(string)         {}
func (nopLogger) Error(error, string) {}

// Example documents one way to call an action.
type Example struct {
	Description string
	// Input is a YAML document accepted by the action.
	Input string
}

// Metadata describes an action for registration and discovery.
type Metadata struct {
	ID          string
	Version     string
	Description string
	Examples    []Example
}

// Validate ensures metadata is well-formed.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("action metadata requires a non-empty ID")
	}
	if !actionIDPattern.MatchString(m.ID) {
		return fmt.Errorf("action '%s' has invalid ID (expected lowercase segments separated by ':')", m.ID)
	}
	if strings.TrimSpace(m.Version) == "" {
		return fmt.Errorf("action '%s' metadata requires Version", m.ID)
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("action '%s' has invalid Version '%s' (expected format: X.Y.Z)", m.ID, m.Version)
	}
	return nil
}

// Action is a single invocable workflow step.
//
// Handler returns nil when the runner should treat the step as successful and
// an error when the step failed. Actions keep no state between calls.
type Action interface {
	Metadata() Metadata
	Handler(actx *Context) error
}

// Runner is implemented by actions that can report a detailed Outcome. The
// error return carries only failures that happen before the outcome exists.
type Runner interface {
	Run(actx *Context) (model.Outcome, error)
}

// Previewer is implemented by actions that support dry runs.
type Previewer interface {
	Preview(actx *Context) (*model.Preview, error)
}
