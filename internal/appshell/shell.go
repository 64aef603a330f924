// Package appshell is the process wrapper shared by the commands: signal
// handling and exit codes.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitCancelled is returned when SIGINT/SIGTERM stops the run.
const ExitCancelled = 130

// Main runs run with a context cancelled on SIGINT/SIGTERM and exits with
// its code. No arguments means help.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = ExitCancelled
	}

	stop()
	os.Exit(code)
}
