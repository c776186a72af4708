package waiter

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/mittwald/waitforurl/internal/view"
	"github.com/mittwald/waitforurl/pkg/probe"
	log "github.com/sirupsen/logrus"
)

const (
	progressInterval  = 10 * time.Second
	minAttemptTimeout = 100 * time.Millisecond
	maxAttemptTimeout = 3000 * time.Millisecond

	// MaxTimeout is the largest deadline in seconds a target can have.
	MaxTimeout = math.MaxInt32
)

type Waiter struct {
	prober probe.Prober
	out    io.Writer
	clock  Clock
	styles view.Styles
}

type Option func(*Waiter)

func WithClock(c Clock) Option {
	return func(w *Waiter) {
		w.clock = c
	}
}

// New returns a Waiter that writes its trace to out.
func New(prober probe.Prober, out io.Writer, opts ...Option) *Waiter {
	w := &Waiter{
		prober: prober,
		out:    out,
		clock:  realClock{},
		styles: view.NewStyles(out),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// state is the per-target polling state. It lives for one call of Wait.
type state struct {
	deadline time.Time // zero when waiting forever
	lastTick time.Time
	reported bool
	code     int
}

func (s *state) expired(now time.Time) bool {
	return !s.deadline.IsZero() && !now.Before(s.deadline)
}

func (s *state) remaining(now time.Time) time.Duration {
	if s.deadline.IsZero() {
		return maxAttemptTimeout
	}
	return s.deadline.Sub(now)
}

// AttemptTimeout bounds a single attempt by the time left until the deadline,
// truncated to milliseconds and clamped to [100ms, 3s].
func AttemptTimeout(remaining time.Duration) time.Duration {
	d := remaining.Truncate(time.Millisecond)
	if d < minAttemptTimeout {
		return minAttemptTimeout
	}
	if d > maxAttemptTimeout {
		return maxAttemptTimeout
	}
	return d
}

// Wait probes t until it answers with a 2xx status or its deadline passes.
// A deadline miss is reported as *Failure; a cancelled ctx returns ctx.Err().
func (w *Waiter) Wait(ctx context.Context, t Target) (Result, error) {
	l := log.WithFields(log.Fields{"kind": "wait", "url": t.Name})

	w.print("Checking ", w.styles.Highlight.Render(t.Name), " ")

	start := w.clock.Now()
	st := state{lastTick: start}
	if t.Timeout > 0 {
		secs := t.Timeout
		if secs > MaxTimeout {
			secs = MaxTimeout
		}
		st.deadline = start.Add(time.Duration(secs) * time.Second)
	}

	res := Result{URL: t.Name, Timeout: t.Timeout}
	finish := func(now time.Time) {
		w.print("\n")
		res.Elapsed = now.Sub(start)
		if st.reported {
			res.StatusCode = st.code
		}
	}

	for {
		now := w.clock.Now()
		if st.expired(now) {
			finish(now)
			break
		}
		if err := ctx.Err(); err != nil {
			finish(now)
			return res, err
		}

		w.tick(&st, now)

		timeout := AttemptTimeout(st.remaining(now))
		outcome := w.prober.Probe(ctx, t.URL, timeout)
		res.Attempts++

		l.WithFields(log.Fields{
			"attempt": res.Attempts,
			"timeout": timeout,
			"outcome": outcome.Kind,
			"status":  outcome.StatusCode,
			"err":     outcome.Err,
		}).Debug("probe attempt finished")

		if w.observe(&st, outcome) {
			finish(w.clock.Now())
			res.OK = true
			return res, nil
		}

		if t.Interval > 0 {
			now = w.clock.Now()
			d := t.Interval
			if !st.deadline.IsZero() && st.remaining(now) < d {
				d = st.remaining(now)
			}
			if d > 0 {
				if err := w.pause(ctx, &st, d); err != nil {
					finish(w.clock.Now())
					return res, err
				}
			}
		}
	}

	if !st.reported {
		return res, &Failure{Reason: NeverResponded, URL: t.Name, Timeout: t.Timeout}
	}
	return res, &Failure{Reason: LastStatusNotOK, URL: t.Name, Timeout: t.Timeout, StatusCode: st.code}
}

// tick prints one dot for every progress interval passed since the last mark.
func (w *Waiter) tick(st *state, now time.Time) {
	for now.Sub(st.lastTick) > progressInterval {
		st.lastTick = st.lastTick.Add(progressInterval)
		w.print(w.styles.Progress.Render("."))
	}
}

// pause sleeps for d in slices no longer than the progress interval, so that
// long polling intervals keep the dots coming.
func (w *Waiter) pause(ctx context.Context, st *state, d time.Duration) error {
	for d > 0 {
		slice := d
		if slice > progressInterval {
			slice = progressInterval
		}
		if err := w.clock.Sleep(ctx, slice); err != nil {
			return err
		}
		d -= slice
		w.tick(st, w.clock.Now())
	}
	return nil
}

// observe updates st with the outcome of one attempt, writes the trace
// annotation if the observed condition changed and reports whether the
// target is healthy.
func (w *Waiter) observe(st *state, o probe.Outcome) bool {
	switch o.Kind {
	case probe.Success, probe.Status, probe.NotFound:
		if !st.reported || st.code != o.StatusCode {
			style := w.styles.Pending
			if o.Kind == probe.Success {
				style = w.styles.Success
			}
			w.print(style.Render(fmt.Sprintf(" HTTP/%d", o.StatusCode)))
		}
		st.reported = true
		st.code = o.StatusCode
		return o.Kind == probe.Success
	case probe.Refused:
		w.interrupt(st, " REFUSED")
	case probe.Unreachable:
		w.interrupt(st, " TIMEOUT")
	}
	return false
}

// interrupt clears the reported status, so the next status is annotated even
// if it repeats the one seen before the interruption.
func (w *Waiter) interrupt(st *state, annotation string) {
	if st.reported {
		w.print(w.styles.Failed.Render(annotation))
		st.reported = false
		st.code = 0
	}
}

func (w *Waiter) print(a ...string) {
	for _, s := range a {
		_, _ = io.WriteString(w.out, s)
	}
}
