package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/mobtimer/internal/dispatch"
)

// ConfigOptions holds flags for the config command.
type ConfigOptions struct {
	*RootOptions
	Env bool
}

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConfigOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   dispatch.CmdConfig,
		Short: "Save the effective settings and print the room URL",
		Long: `Resolve the settings and write them to the config file, so later
commands reuse the same room.

With --env the settings are printed as shell exports on stdout and the room
URL goes to stderr:

  eval "$(mobtimer --new-room config --env)"`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var render func(*OutputFormatter, *dispatch.Result) error
			if opts.Env {
				render = renderExports
			}
			return runDispatch(opts.RootOptions, cmd, dispatch.CmdConfig, nil, render)
		},
	}

	cmd.Flags().BoolVar(&opts.Env, "env", false, "print MOB_TIMER_* shell exports")

	return cmd
}

func renderExports(f *OutputFormatter, res *dispatch.Result) error {
	fmt.Fprintf(f.Writer, "export MOB_TIMER_SITE=%s\n", res.Config.Site)
	fmt.Fprintf(f.Writer, "export MOB_TIMER_ROOM=%s\n", res.Config.Room)
	fmt.Fprintf(f.Writer, "export MOB_TIMER_LINEUP=%s\n", res.Config.Lineup)
	fmt.Fprintf(f.Writer, "export MOB_TIMER_TIME=%d\n", res.Config.Time)
	fmt.Fprintln(f.GetErrWriter(), res.String())
	return nil
}

// NewRotateCommands creates next, restart and back.
func NewRotateCommands(rootOpts *RootOptions) []*cobra.Command {
	specs := []struct {
		name    string
		aliases []string
		short   string
	}{
		{dispatch.CmdNext, []string{dispatch.CmdForward}, "Rotate the lineup forward and start the next turn"},
		{dispatch.CmdRestart, nil, "Restart the current turn without rotating"},
		{dispatch.CmdBack, nil, "Rotate the lineup back one place and restart that turn"},
	}

	cmds := make([]*cobra.Command, 0, len(specs))
	for _, s := range specs {
		name := s.name
		cmds = append(cmds, &cobra.Command{
			Use:           name,
			Aliases:       s.aliases,
			Short:         s.short,
			Args:          noArgs,
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDispatch(rootOpts, cmd, name, nil, nil)
			},
		})
	}
	return cmds
}

// NewShuffleCommand creates the shuffle command.
func NewShuffleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           dispatch.CmdShuffle,
		Short:         "Randomly reorder the lineup (no notification)",
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(rootOpts, cmd, dispatch.CmdShuffle, nil, nil)
		},
	}
}

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit    int
	ThisRoom bool
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   dispatch.CmdHistory,
		Short: "List assignments recorded with --history",
		Long: `List the most recent assignments recorded in the --history database,
oldest first.

Example:
  mobtimer --history .mobtimer.db history --limit 5`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(opts.RootOptions, cmd, dispatch.CmdHistory, func(d *dispatch.Dispatcher) {
				d.HistoryLimit = opts.Limit
				d.HistoryRoomOnly = opts.ThisRoom
			}, nil)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&opts.ThisRoom, "this-room", false, "only show the configured room")

	return cmd
}
