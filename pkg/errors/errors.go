// Package errors provides the error types of the scorecard merge system.
// The merge algorithm itself has almost no failure modes: ambiguity becomes
// a conflict record, not an error. What remains is the resolution session's
// submission errors and parse failures in the collaborators around the core.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the scorecard merge system
var (
	// ErrNoConflicts indicates a resolution session was opened for a merge
	// result that has nothing to resolve
	ErrNoConflicts = errors.New("no conflicts to resolve")

	// ErrIncompleteSelection indicates a submission missing a selection for
	// at least one open conflict
	ErrIncompleteSelection = errors.New("incomplete selection")

	// ErrUnknownConflict indicates a submission referencing a path with no
	// matching open conflict
	ErrUnknownConflict = errors.New("unknown conflict")

	// ErrSessionClosed indicates an operation on a resolved or cancelled session
	ErrSessionClosed = errors.New("session closed")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// IncompleteSelectionError reports the conflict paths a submission left
// unselected. The submission is rejected atomically; the caller re-prompts.
type IncompleteSelectionError struct {
	Missing []string
}

// Error implements the error interface
func (e *IncompleteSelectionError) Error() string {
	return fmt.Sprintf("incomplete selection: %d conflict(s) unresolved: %s",
		len(e.Missing), strings.Join(e.Missing, ", "))
}

// Is implements errors.Is support
func (e *IncompleteSelectionError) Is(target error) bool {
	return target == ErrIncompleteSelection
}

// NewIncompleteSelectionError creates a new IncompleteSelectionError
func NewIncompleteSelectionError(missing []string) *IncompleteSelectionError {
	return &IncompleteSelectionError{Missing: missing}
}

// UnknownConflictError reports selection paths that match no open conflict.
type UnknownConflictError struct {
	Paths []string
}

// Error implements the error interface
func (e *UnknownConflictError) Error() string {
	return fmt.Sprintf("selection references unknown conflict(s): %s",
		strings.Join(e.Paths, ", "))
}

// Is implements errors.Is support
func (e *UnknownConflictError) Is(target error) bool {
	return target == ErrUnknownConflict
}

// NewUnknownConflictError creates a new UnknownConflictError
func NewUnknownConflictError(paths []string) *UnknownConflictError {
	return &UnknownConflictError{Paths: paths}
}

// SessionStateError reports an operation attempted on a session that has
// already reached a terminal state.
type SessionStateError struct {
	Operation string
	State     string
}

// Error implements the error interface
func (e *SessionStateError) Error() string {
	return fmt.Sprintf("cannot %s: session is %s", e.Operation, e.State)
}

// Is implements errors.Is support
func (e *SessionStateError) Is(target error) bool {
	return target == ErrSessionClosed
}

// NewSessionStateError creates a new SessionStateError
func NewSessionStateError(operation, state string) *SessionStateError {
	return &SessionStateError{Operation: operation, State: state}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "document", "csv", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, message string, err error) *ParseError {
	return &ParseError{Format: format, Message: message, Err: err}
}

// IOError represents an error during I/O operations in the CLI layer
type IOError struct {
	Operation string // "read", "write"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Helper functions for error checking

// IsIncompleteSelection checks if an error is an incomplete selection error
func IsIncompleteSelection(err error) bool {
	return errors.Is(err, ErrIncompleteSelection)
}

// IsUnknownConflict checks if an error is an unknown conflict error
func IsUnknownConflict(err error) bool {
	return errors.Is(err, ErrUnknownConflict)
}

// IsSessionClosed checks if an error is a closed session error
func IsSessionClosed(err error) bool {
	return errors.Is(err, ErrSessionClosed)
}

// IsNoConflicts checks if an error is a no-conflicts error
func IsNoConflicts(err error) bool {
	return errors.Is(err, ErrNoConflicts)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}
