package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "mobtimer", cmd.Use)
	assert.Contains(t, cmd.Long, "MOB_TIMER_ROOM")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"config", "next", "restart", "back", "shuffle", "history"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestForwardAlias(t *testing.T) {
	cmd := NewRootCommand()
	subCmd, _, err := cmd.Find([]string{"forward"})
	require.NoError(t, err)
	assert.Equal(t, "next", subCmd.Name())
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	flags := cmd.PersistentFlags()

	verboseFlag := flags.Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := flags.Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	configFlag := flags.Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, ".mobtimer.json", configFlag.DefValue)

	timeFlag := flags.Lookup("time")
	require.NotNil(t, timeFlag)
	assert.Equal(t, "t", timeFlag.Shorthand)

	for _, name := range []string{"site", "room", "new-room", "lineup", "history"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}
}

func TestConfigCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	configCmd, _, err := cmd.Find([]string{"config"})
	require.NoError(t, err)

	envFlag := configCmd.Flags().Lookup("env")
	require.NotNil(t, envFlag)
	assert.Equal(t, "false", envFlag.DefValue)
}

func TestHistoryCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	historyCmd, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)

	limitFlag := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, limitFlag)
	assert.Equal(t, "20", limitFlag.DefValue)
	assert.NotNil(t, historyCmd.Flags().Lookup("this-room"))
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	errBuf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{"--format", "invalid", "shuffle"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errBuf.String(), "Error [E009]")
}

func TestNegativeTimeRejected(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--time=-3", "next"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time")
}

func TestUnknownCommandRejected(t *testing.T) {
	errBuf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{"sideways"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errBuf.String(), "Error [E009]")
}

func TestCommandRequired(t *testing.T) {
	errBuf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a command is required")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errBuf.String(), "Error [E009]")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"bad_flag_value", []string{"-t", "abc", "next"}, "invalid argument"},
		{"unknown_global_flag", []string{"--bogus", "next"}, "unknown flag: --bogus"},
		{"unknown_subcommand_flag", []string{"history", "--bogus"}, "unknown flag: --bogus"},
		{"extra_argument", []string{"next", "extra"}, "unknown command \"extra\""},
		{"extra_argument_config", []string{"config", "a", "b"}, "unknown command \"a\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outBuf := &bytes.Buffer{}
			errBuf := &bytes.Buffer{}
			cmd := NewRootCommand()
			cmd.SetOut(outBuf)
			cmd.SetErr(errBuf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Contains(t, errBuf.String(), "Error [E009]")
			assert.Contains(t, errBuf.String(), tt.wantMsg)
			assert.Empty(t, outBuf.String())
		})
	}
}
