// Package output provides error classification and user-facing output for the bloggerposts CLI.
package output

import (
	"errors"
	"fmt"
)

// Exit codes. Every failure is fatal for the whole run and exits with 1.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Kind classifies where in the pipeline a failure happened.
type Kind string

// Error kinds.
const (
	// KindInput covers a missing or unreadable input file, malformed JSON, or a missing items key.
	KindInput Kind = "input"
	// KindRecord covers a post missing a required field or carrying a malformed timestamp.
	KindRecord Kind = "record"
	// KindOutput covers failures creating directories or writing the CSV or HTML files.
	KindOutput Kind = "output"
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewInputError creates an error for input read/parse failures.
func NewInputError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Kind:    KindInput,
		Message: message,
		Cause:   cause,
	}
}

// NewRecordError creates an error for a post that cannot be extracted.
func NewRecordError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Kind:    KindRecord,
		Message: message,
		Cause:   cause,
	}
}

// NewOutputError creates an error for failed directory creation or file writes.
func NewOutputError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Kind:    KindOutput,
		Message: message,
		Cause:   cause,
	}
}

// KindOf reports the Kind of err, or "" if err is not an ExitError.
func KindOf(err error) Kind {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Kind
	}
	return ""
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitFailure for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Untyped errors (flag parsing and the like) still fail the run
	return ExitFailure
}
