package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/roach88/mobtimer/internal/config"
	"github.com/roach88/mobtimer/internal/lineup"
	"github.com/roach88/mobtimer/internal/notify"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	ConfigPath  string
	Site        string
	Room        string
	NewRoom     bool
	Lineup      string
	Time        int
	HistoryPath string

	// Collaborators, overridable for testing. Nil selects the real one.
	RoomGenerator config.RoomGenerator
	Notifier      notify.Notifier
	Shuffler      lineup.Shuffler
	Environ       map[string]string // nil reads the process environment
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the mobtimer CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command around opts.
// Flags parsed from the command line are written into opts.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mobtimer",
		Short: "mobtimer - lineup rotation for timer.mob.sh",
		Long: `Rotate a mob-programming lineup and start the shared timer.

The lineup is a plain text file, one name per line. After each rotation the
first name navigates and the second drives; the pair is announced to the
timer room at <site>/<room>.

Settings resolve per field: flags, then the config file, then the
MOB_TIMER_SITE, MOB_TIMER_ROOM, MOB_TIMER_LINEUP and MOB_TIMER_TIME
environment variables, then built-in defaults.`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return usageError(cmd, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Time < 0 {
				return usageError(cmd, fmt.Sprintf("invalid time %d: must be positive", opts.Time))
			}
			configureLogging(cmd, opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageError(cmd, "a command is required (one of config, next, restart, back, shuffle, history)")
		},
	}

	// Subcommands inherit this, so flag parse errors from any command are
	// reported like other usage errors.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c, err.Error())
	})

	bindGlobalFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewRotateCommands(opts)...)
	cmd.AddCommand(NewShuffleCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

func bindGlobalFlags(fs *pflag.FlagSet, opts *RootOptions) {
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	fs.StringVar(&opts.Format, "format", "text", "output format (json|text)")

	fs.StringVar(&opts.ConfigPath, "config", config.DefaultPath, "path to the config file (.json or .yaml)")
	fs.StringVar(&opts.Site, "site", "", "timer site URL (default "+config.DefaultSite+")")
	fs.StringVar(&opts.Room, "room", "", "timer room id (default random)")
	fs.BoolVar(&opts.NewRoom, "new-room", false, "use a freshly generated room id")
	fs.StringVar(&opts.Lineup, "lineup", "", "path to the lineup file (default \""+config.DefaultLineup+"\")")
	fs.IntVarP(&opts.Time, "time", "t", 0, fmt.Sprintf("turn length in minutes (default %d)", config.DefaultTime))
	fs.StringVar(&opts.HistoryPath, "history", "", "SQLite file recording sent assignments (disabled if empty)")

	fs.SortFlags = false
}

// configureLogging installs a slog text handler on the command's error
// stream, at Debug level when verbose.
func configureLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// usageError reports a bad global flag in text form, since the format
// itself may be the bad flag.
func usageError(cmd *cobra.Command, message string) error {
	formatter := &OutputFormatter{Format: "text", Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr()}
	_ = formatter.Error(ErrCodeUsage, message, nil)
	return NewExitError(ExitCommandError, message)
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError(cmd, err.Error())
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
