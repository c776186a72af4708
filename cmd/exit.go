package cmd

import (
	"context"
	"fmt"

	"github.com/mittwald/waitforurl/internal/plan"
	"github.com/mittwald/waitforurl/pkg/waiter"
	"github.com/pkg/errors"
)

const (
	ExitSuccess          = 0
	ExitErrorInvalidArgs = 1
	ExitErrorNotReady    = 2
	ExitInterrupted      = 130
)

// errUsage signals that the usage text was printed instead of doing any work.
var errUsage = errors.New("no URL to check")

// exitCode is the only place that turns errors into user facing messages
// and process exit codes.
func (r *runner) exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var failure *waiter.Failure
	var argErr *plan.ArgumentError
	var urlErr *plan.MalformedURLError

	switch {
	case errors.Is(err, errUsage):
		return ExitErrorInvalidArgs
	case errors.As(err, &failure):
		fmt.Fprintln(r.stdout, failure.Error())
		return ExitErrorNotReady
	case errors.As(err, &argErr), errors.As(err, &urlErr):
		fmt.Fprintln(r.stderr, err.Error())
		return ExitErrorInvalidArgs
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(r.stderr, "Interrupted")
		return ExitInterrupted
	default:
		fmt.Fprintln(r.stderr, err.Error())
		return ExitErrorInvalidArgs
	}
}
