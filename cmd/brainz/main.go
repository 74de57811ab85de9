package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/brainz/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		code := cli.GetExitCode(err)
		if code == cli.ExitCommandError {
			fmt.Fprintf(os.Stderr, "brainz: %v\n", err)
		}
		return code
	}
	return cli.ExitSuccess
}
