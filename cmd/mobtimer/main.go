// Command mobtimer rotates a mob-programming lineup and starts the shared
// timer on timer.mob.sh.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/mobtimer/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	os.Exit(cli.GetExitCode(err))
}
