package cli

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCommandError(t *testing.T) {
	t.Run("ExitCode", func(t *testing.T) {
		err := NewCommandError(1)
		assert.Equal(t, 1, err.ExitCode())

		err = NewCommandError(42)
		assert.Equal(t, 42, err.ExitCode())
	})

	t.Run("ImplementsError", func(t *testing.T) {
		var err error = NewCommandError(1)
		assert.Equal(t, "command failed", err.Error())
	})

	t.Run("UnwrapsThroughWrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("check: %w", NewCommandError(1))

		var cmdErr *CommandError
		assert.True(t, stdErrors.As(wrapped, &cmdErr))
		assert.Equal(t, 1, cmdErr.ExitCode())
	})
}
