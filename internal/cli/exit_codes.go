package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the benchcat CLI. These support programmatic
// composition and CI integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitValidationFailed indicates catalog validation failed.
	ExitValidationFailed = 1

	// ExitInvalidArguments indicates invalid command arguments or a
	// missing input file.
	ExitInvalidArguments = 2
)

// ExitError carries an exit code through cobra's error return path.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates an error carrying the given exit code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// ExitCode extracts the exit code from an error; non-exit errors map
// to ExitInvalidArguments and nil to ExitSuccess.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitInvalidArguments
}
