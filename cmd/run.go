package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mittwald/waitforurl/internal/config"
	"github.com/mittwald/waitforurl/internal/plan"
	"github.com/mittwald/waitforurl/internal/view"
	"github.com/mittwald/waitforurl/pkg/probe"
	"github.com/mittwald/waitforurl/pkg/report"
	"github.com/mittwald/waitforurl/pkg/waiter"
	log "github.com/sirupsen/logrus"
)

type runner struct {
	stdout io.Writer
	stderr io.Writer

	loadSettings func() (*config.Settings, error)
	newProber    func(*config.Settings) probe.Prober
	clock        waiter.Clock
}

func newRunner(stdout, stderr io.Writer) *runner {
	return &runner{
		stdout:       stdout,
		stderr:       stderr,
		loadSettings: config.FromEnv,
		newProber:    probe.NewHttpProbe,
	}
}

func (r *runner) run(ctx context.Context, args []string) error {
	// help and version never depend on the configuration
	if p := plan.Informational(args); p != nil {
		if p.Help {
			fmt.Fprint(r.stdout, usage)
		} else {
			fmt.Fprintln(r.stdout, versionLine())
		}
		return nil
	}

	settings, err := r.loadSettings()
	if err != nil {
		return err
	}

	p, err := plan.Parse(args, settings.InitialTimeout())
	if err != nil {
		return err
	}

	configureLogging(settings, p.Verbose)

	if p.Empty() {
		if p.AllowEmpty {
			fmt.Fprintln(r.stdout, "Nothing to check.")
			return nil
		}
		fmt.Fprint(r.stdout, usage)
		return errUsage
	}

	if settings.UserAgent == "" {
		settings.UserAgent = "wait-for-url/" + versionOrDev()
	}

	var opts []waiter.Option
	if r.clock != nil {
		opts = append(opts, waiter.WithClock(r.clock))
	}
	w := waiter.New(r.newProber(settings), r.stdout, opts...)

	reportPath := p.ReportPath
	if reportPath == "" {
		reportPath = settings.Report
	}

	rep := report.New(r.now())
	failure := r.execute(ctx, p, w, rep)

	if failure == nil {
		fmt.Fprintln(r.stdout, view.NewStyles(r.stdout).Success.Render("OK"))
	}

	if reportPath != "" {
		rep.OK = failure == nil
		if err := rep.WriteFile(reportPath); err != nil {
			log.WithError(err).Error("could not write report")
		}
	}

	return failure
}

// execute runs the steps of p in order and stops waiting at the first
// failure. Targets after a failure are only recorded as skipped.
func (r *runner) execute(ctx context.Context, p *plan.Plan, w *waiter.Waiter, rep *report.Report) error {
	var failure error

	for _, step := range p.Steps {
		if failure != nil {
			if step.Kind == plan.CheckStep {
				rep.Skip(step.Target.Name)
			}
			continue
		}

		switch step.Kind {
		case plan.TimeoutStep:
			fmt.Fprintf(r.stdout, "Changed timeout to %s\n", describeTimeout(step.Timeout))
		case plan.CheckStep:
			res, err := w.Wait(ctx, step.Target)
			rep.Add(res, err)
			if err != nil {
				log.WithFields(log.Fields{"url": step.Target.Name, "attempts": res.Attempts}).Debug("giving up")
				failure = err
			}
		}
	}

	return failure
}

func (r *runner) now() time.Time {
	if r.clock != nil {
		return r.clock.Now()
	}
	return time.Now()
}

func describeTimeout(timeout int) string {
	if timeout <= 0 {
		return "disabled"
	}
	return strconv.Itoa(timeout)
}

func configureLogging(settings *config.Settings, verbose bool) {
	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		log.SetLevel(level)
	}
}
