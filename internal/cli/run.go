package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/mobtimer/internal/config"
	"github.com/roach88/mobtimer/internal/dispatch"
	"github.com/roach88/mobtimer/internal/history"
)

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// resolveConfig merges flags, the config file and defaults.
// The default room is generated here, once per invocation.
func (o *RootOptions) resolveConfig() (config.Config, error) {
	gen := o.RoomGenerator
	if gen == nil {
		gen = config.UUIDGenerator{}
	}

	defaults, err := config.Defaults(gen, o.Environ)
	if err != nil {
		return config.Config{}, err
	}

	persisted, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := config.Config{
		Site:   o.Site,
		Room:   o.Room,
		Lineup: o.Lineup,
		Time:   o.Time,
	}
	if o.NewRoom {
		flags.Room = gen.Generate()
	}

	return config.Resolve(flags, persisted, defaults), nil
}

// runDispatch resolves the config, runs one command and prints its result.
// render, when set, replaces the default text output.
func runDispatch(opts *RootOptions, cmd *cobra.Command, name string, setup func(*dispatch.Dispatcher), render func(*OutputFormatter, *dispatch.Result) error) error {
	formatter := opts.formatter(cmd)

	cfg, err := opts.resolveConfig()
	if err != nil {
		return fail(formatter, err)
	}
	formatter.VerboseLog("site=%s room=%s lineup=%s time=%d", cfg.Site, cfg.Room, cfg.Lineup, cfg.Time)

	d := &dispatch.Dispatcher{
		Config:     cfg,
		ConfigPath: opts.ConfigPath,
		Notifier:   opts.Notifier,
		Shuffler:   opts.Shuffler,
		Logger:     slog.Default(),
	}

	if opts.HistoryPath != "" {
		store, err := history.Open(opts.HistoryPath)
		if err != nil {
			return fail(formatter, err)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Error("error closing history", "error", closeErr)
			}
		}()
		d.History = store
	}

	if setup != nil {
		setup(d)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := d.Run(ctx, name)
	if err != nil {
		if res != nil && res.Persisted {
			formatter.VerboseLog("lineup saved to %s before the failure", cfg.Lineup)
		}
		return fail(formatter, err)
	}

	if render != nil && opts.Format == "text" {
		return render(formatter, res)
	}
	return formatter.Success(res)
}
