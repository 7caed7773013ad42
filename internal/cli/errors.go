package cli

import (
	"errors"

	"github.com/roach88/mobtimer/internal/config"
	"github.com/roach88/mobtimer/internal/dispatch"
	"github.com/roach88/mobtimer/internal/lineup"
	"github.com/roach88/mobtimer/internal/notify"
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeConfigRead      = "E002" // Config file unreadable
	ErrCodeConfigParse     = "E003" // Config file malformed or invalid
	ErrCodeLineupRead      = "E004" // Lineup file missing or unreadable
	ErrCodeLineupShort     = "E005" // Fewer than two names in the lineup
	ErrCodeNotify          = "E006" // Timer service unreachable
	ErrCodeUnknownCommand  = "E007" // No such command
	ErrCodeHistoryDisabled = "E008" // history without --history
	ErrCodeUsage           = "E009" // Bad flag value
)

// classify maps a command error to its output code and exit code.
func classify(err error) (string, int) {
	var unknown *dispatch.UnknownCommandError
	switch {
	case errors.Is(err, config.ErrConfigRead):
		return ErrCodeConfigRead, ExitCommandError
	case errors.Is(err, config.ErrConfigParse):
		return ErrCodeConfigParse, ExitCommandError
	case errors.Is(err, lineup.ErrLineupRead):
		return ErrCodeLineupRead, ExitCommandError
	case errors.Is(err, lineup.ErrInsufficientLineup):
		return ErrCodeLineupShort, ExitFailure
	case errors.Is(err, notify.ErrNotify):
		return ErrCodeNotify, ExitFailure
	case errors.As(err, &unknown):
		return ErrCodeUnknownCommand, ExitCommandError
	case errors.Is(err, dispatch.ErrHistoryDisabled):
		return ErrCodeHistoryDisabled, ExitCommandError
	}
	return ErrCodeGeneric, ExitFailure
}

// fail reports err through the formatter and returns it as an ExitError.
func fail(formatter *OutputFormatter, err error) error {
	code, exit := classify(err)
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(exit, code, err)
}
