package types

import (
	"errors"
	"fmt"
)

// Error codes for the expected failure modes of store operations. Anything
// else (decode corruption, unusable base directory) is an ordinary wrapped
// error and treated as a fault.
const (
	CodeLockTimeout = "LOCK_TIMEOUT"
	CodeValidation  = "VALIDATION"
	CodeNotFound    = "NOT_FOUND"
)

// TaskError is a structured error returned for expected failures, so callers
// can distinguish "try later" (lock timeout) and caller mistakes (validation,
// not-found) from data or environment problems.
type TaskError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewTaskError creates a new structured task error.
func NewTaskError(code string, message string, details map[string]any) *TaskError {
	return &TaskError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewLockTimeoutError reports that the exclusive lock could not be acquired
// within the configured window.
func NewLockTimeoutError(lockPath string, timeoutMs int64) *TaskError {
	return NewTaskError(CodeLockTimeout,
		fmt.Sprintf("could not acquire lock on %s within %dms", lockPath, timeoutMs),
		map[string]any{"lockPath": lockPath, "timeoutMs": timeoutMs})
}

// NewValidationError reports invalid caller input. The operation has no side effect.
func NewValidationError(field, message string) *TaskError {
	return NewTaskError(CodeValidation, message, map[string]any{"field": field})
}

// NewNotFoundError reports an operation on an unknown task id.
func NewNotFoundError(id string) *TaskError {
	return NewTaskError(CodeNotFound,
		fmt.Sprintf("task with ID '%s' not found", id),
		map[string]any{"id": id})
}

// ErrorCode returns the TaskError code carried by err, or "" if err is not a
// structured task error.
func ErrorCode(err error) string {
	var te *TaskError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

// IsLockTimeout reports whether err is a lock-timeout error.
func IsLockTimeout(err error) bool { return ErrorCode(err) == CodeLockTimeout }

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return ErrorCode(err) == CodeValidation }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return ErrorCode(err) == CodeNotFound }

// IsExpected reports whether err is one of the expected, value-style failure
// modes rather than a fault.
func IsExpected(err error) bool {
	var te *TaskError
	return errors.As(err, &te)
}
