package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRunActive is returned when a documentation run is started while another is in progress.
	ErrRunActive = errors.New("documentation run already active")
	// ErrNoActiveRun is returned when a step is requested outside of a documentation run.
	ErrNoActiveRun = errors.New("no active documentation run")
	// ErrNoTestMethod is returned when a placeholder needs the test method but none is available.
	ErrNoTestMethod = errors.New("no test method available")
)

// RestDocsError is the base error type with context.
type RestDocsError struct {
	Phase      string // "config", "run", "resolve", "write"
	Method     string
	Step       int
	Message    string
	Suggestion string
	Cause      error
}

func (e *RestDocsError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.Method != "" {
		s += fmt.Sprintf(" %s", e.Method)
	}
	if e.Step > 0 {
		s += fmt.Sprintf("#%d", e.Step)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	if e.Suggestion != "" {
		s += fmt.Sprintf(" (hint: %s)", e.Suggestion)
	}
	return s
}

func (e *RestDocsError) Unwrap() error {
	return e.Cause
}

// NewError creates a new RestDocsError.
func NewError(phase, method string, step int, message string, cause error) *RestDocsError {
	return &RestDocsError{
		Phase:   phase,
		Method:  method,
		Step:    step,
		Message: message,
		Cause:   cause,
	}
}

// NewErrorWithSuggestion creates a RestDocsError carrying a hint for the user.
func NewErrorWithSuggestion(phase, method string, step int, message, suggestion string, cause error) *RestDocsError {
	e := NewError(phase, method, step, message, cause)
	e.Suggestion = suggestion
	return e
}
