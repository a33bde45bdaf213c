package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/smartshark/sharkdb-cli/internal/utils/test/assert"
)

func TestErr(t *testing.T) {
	t.Run("a wrapped error should hide its cause from the error message", func(t *testing.T) {
		err := NewWrapped("something went wrong", errors.New("some internal detail"))
		assert.Equal(t, "something went wrong", err.Error())
		assert.Equal(t, "something went wrong: some internal detail", err.String())
	})

	t.Run("a privileged error should expose its root cause", func(t *testing.T) {
		cause := errors.New("not authorized")
		err := NewPrivileged("failed to provision accounts", fmt.Errorf("createUser failed: %w", cause))

		assert.Equal(t, "failed to provision accounts: not authorized", err.Error())
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("unwrapping should skip intermediate causes down to the root", func(t *testing.T) {
		root := errors.New("root cause")
		err := NewWrapped("outer", NewWrapped("inner", fmt.Errorf("middle: %w", root)))
		assert.Equal(t, root, errors.Unwrap(err))
	})
}

func TestErrDisableUsage(t *testing.T) {
	var suggester CommandSuggester = errSuggestion{}

	err := errDisableUsage{fmt.Errorf("command failed: %w", errSuggestion{})}

	assert.True(t, errors.As(error(err), &suggester), "the suggestion should survive the usage wrapper")
	assert.Match(t, []string{"sharkdb provision"}, suggester.SuggestedCommands())
}

type errSuggestion struct{}

func (errSuggestion) Error() string { return "things are not right" }

func (errSuggestion) SuggestedCommands() []string {
	return []string{"sharkdb provision"}
}
