package cli

import (
	"testing"

	"github.com/skosuge/taskpocket/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	// Save original function and restore after test
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	// Mock launchTUIFunc to track if it was called
	called := false
	launchTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")

	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "launchTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")

	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "launchTUIFunc should NOT be called when --help is provided")
}

func TestNewRootCommand_TUISubcommand_LaunchesTUI(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")

	root.SetArgs([]string{"tui"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called)
}
