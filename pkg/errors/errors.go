package errors

import (
	"fmt"
)

// ParseError represents an action input document that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures action input validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PathResolutionError reports a path that cannot be resolved safely under the
// workspace root. It is never downgraded by failOnError.
type PathResolutionError struct {
	Root string
	Path string
	Err  error
}

// NewPathResolutionError constructs a PathResolutionError.
func NewPathResolutionError(root, path string, err error) error {
	return &PathResolutionError{Root: root, Path: path, Err: err}
}

func (e *PathResolutionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("path resolution error: cannot resolve %q under %s: %v", e.Path, e.Root, e.Err)
	}
	return fmt.Sprintf("path resolution error: cannot resolve %q under %s", e.Path, e.Root)
}

// Unwrap exposes the underlying error.
func (e *PathResolutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SerializationError reports a value that cannot be represented as YAML.
// Path locates the offending value inside the structure (empty for the root).
type SerializationError struct {
	Path string
	Err  error
}

// NewSerializationError constructs a SerializationError.
func NewSerializationError(path string, err error) error {
	return &SerializationError{Path: path, Err: err}
}

func (e *SerializationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("serialization error at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("serialization error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *SerializationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WriteError represents a filesystem failure while persisting a document.
type WriteError struct {
	Path string
	Err  error
}

// NewWriteError constructs a WriteError.
func NewWriteError(path string, err error) error {
	return &WriteError{Path: path, Err: err}
}

func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("write error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the root error.
func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ActionError indicates issues within action registration or lookup.
type ActionError struct {
	Action  string
	Message string
	Err     error
}

// NewActionError constructs an ActionError for the given action id.
func NewActionError(action string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ActionError{Action: action, Message: message, Err: err}
}

func (e *ActionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Action != "" {
		return fmt.Sprintf("action error [%s]: %s", e.Action, e.Message)
	}
	return fmt.Sprintf("action error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ActionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
