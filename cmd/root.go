package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "wait-for-url [options] [[--timeout=TIMEOUT] url...]",
		Short: "Waits until all the supplied URLs return HTTP/20x",
		Long:  "wait-for-url checks the supplied URLs one after another and blocks until each of them answered with a 2xx status, or its timeout passed",

		// tokens are positional: --timeout only applies to the URLs following it
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args:               cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd.Context(), args)
		},
	}
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := newRunner(os.Stdout, os.Stderr)
	err := newRootCommand(r).ExecuteContext(ctx)

	return r.exitCode(err)
}
