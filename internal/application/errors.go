package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound = errors.New("not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PathViolationError reports a path escaping the vault root.
type PathViolationError struct {
	Path string
	Root string
}

func (e *PathViolationError) Error() string {
	return fmt.Sprintf("path %s escapes vault root %s", e.Path, e.Root)
}

// InternalError normalizes an externally raised failure into a single
// internal kind carrying the original message. Validation and path
// violation errors are never wrapped — they keep their own kind.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Internal wraps err as an InternalError unless it already carries a
// distinct kind.
func Internal(op string, err error) error {
	if err == nil {
		return nil
	}
	var vErr *ValidationError
	var pErr *PathViolationError
	if errors.As(err, &vErr) || errors.As(err, &pErr) {
		return err
	}
	return &InternalError{Op: op, Err: err}
}
