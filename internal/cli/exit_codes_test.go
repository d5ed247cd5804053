// Package cli tests exit code mapping for the command surface.
// Related: internal/cli/exit_codes.go
// Tags: cli, exit, error
package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil is success":          {err: nil, want: ExitSuccess},
		"exit error carries code": {err: NewExitError(ExitValidationFailed), want: ExitValidationFailed},
		"wrapped exit error":      {err: fmt.Errorf("context: %w", NewExitError(ExitValidationFailed)), want: ExitValidationFailed},
		"plain error":             {err: errors.New("boom"), want: ExitInvalidArguments},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestExitError_Error(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "exit code 1", NewExitError(1).Error())
}
