package cleaning

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a stage failure.
type ErrorKind string

const (
	ErrorKindCollision ErrorKind = "collision"
	ErrorKindExecution ErrorKind = "execution"
	ErrorKindShape     ErrorKind = "shape"
)

// StageError is a failure attributed to a single pipeline stage.
type StageError struct {
	Kind    ErrorKind
	Stage   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e == nil {
		return "unknown stage error"
	}
	if e.Stage != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Stage, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewCollisionError reports two distinct labels normalizing to the same name.
func NewCollisionError(stage, label string) *StageError {
	return &StageError{
		Kind:    ErrorKindCollision,
		Stage:   stage,
		Message: fmt.Sprintf("normalized label %q produced by more than one source column", label),
	}
}

// NewExecutionError wraps an unexpected failure inside a stage.
func NewExecutionError(stage string, cause error) *StageError {
	return &StageError{
		Kind:    ErrorKindExecution,
		Stage:   stage,
		Message: "stage execution failed",
		Cause:   cause,
	}
}

// NewShapeError reports a dataset whose rows and columns disagree.
func NewShapeError(stage string, cause error) *StageError {
	return &StageError{
		Kind:    ErrorKindShape,
		Stage:   stage,
		Message: "dataset shape invalid",
		Cause:   cause,
	}
}

// IsKind reports whether err is a StageError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *StageError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}
