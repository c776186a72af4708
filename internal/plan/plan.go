package plan

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mittwald/waitforurl/internal/helper"
	"github.com/mittwald/waitforurl/pkg/waiter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type StepKind int

const (
	// CheckStep waits for Step.Target.
	CheckStep StepKind = iota
	// TimeoutStep announces that Step.Timeout applies to the following checks.
	TimeoutStep
)

type Step struct {
	Kind    StepKind
	Timeout int
	Target  waiter.Target
}

// Plan is the result of folding the command line tokens. Steps keep the
// order of the tokens they were built from.
type Plan struct {
	Help       bool
	Version    bool
	AllowEmpty bool
	Verbose    bool
	ReportPath string
	Steps      []Step
}

// Targets returns the targets of all check steps in order.
func (p *Plan) Targets() []waiter.Target {
	var targets []waiter.Target
	for _, s := range p.Steps {
		if s.Kind == CheckStep {
			targets = append(targets, s.Target)
		}
	}
	return targets
}

func (p *Plan) Empty() bool {
	return len(p.Targets()) == 0
}

func isHelp(lower string) bool {
	switch lower {
	case "-h", "--help", "-?", "help":
		return true
	}
	return false
}

func isVersion(lower string) bool {
	return lower == "-v" || lower == "--version"
}

func isURL(token string) bool {
	return strings.HasPrefix(token, "http://") || strings.HasPrefix(token, "https://")
}

// accumulator is the state threaded through the tokens from left to right.
type accumulator struct {
	timeout  int
	interval time.Duration
}

// Informational returns a help or version Plan if tokens ask for one, and nil
// otherwise. A help token anywhere wins over everything else, followed by a
// version token.
func Informational(tokens []string) *Plan {
	for _, t := range tokens {
		if isHelp(strings.ToLower(t)) {
			return &Plan{Help: true}
		}
	}
	for _, t := range tokens {
		if isVersion(strings.ToLower(t)) {
			return &Plan{Version: true}
		}
	}
	return nil
}

// Parse folds tokens into a Plan. defaultTimeout applies to URLs preceding
// any --timeout token. Help and version tokens are handled as in
// Informational.
func Parse(tokens []string, defaultTimeout int) (*Plan, error) {
	if p := Informational(tokens); p != nil {
		return p, nil
	}

	p := &Plan{}
	acc := accumulator{timeout: defaultTimeout}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		lower := strings.ToLower(token)

		switch {
		case isURL(token):
			target, err := newTarget(token, acc)
			if err != nil {
				return nil, err
			}
			p.Steps = append(p.Steps, Step{Kind: CheckStep, Target: target})

		case !strings.HasPrefix(token, "-"):
			return nil, argumentErrorf("Expected an URL, got %s", token)

		case lower == "--allow-empty":
			p.AllowEmpty = true

		case lower == "--verbose":
			p.Verbose = true

		case strings.HasPrefix(lower, "--timeout="), lower == "--timeout":
			value, next, err := optionValue(tokens, i, "--timeout", "a timeout")
			if err != nil {
				return nil, err
			}
			i = next

			parsed, err := strconv.ParseInt(value, 10, 32)
			if err != nil {
				return nil, argumentErrorf("Supplied timeout value %s is not a number", value)
			}
			timeout := int(parsed)
			acc.timeout = timeout
			p.Steps = append(p.Steps, Step{Kind: TimeoutStep, Timeout: timeout})

		case strings.HasPrefix(lower, "--interval="), lower == "--interval":
			value, next, err := optionValue(tokens, i, "--interval", "an interval")
			if err != nil {
				return nil, err
			}
			i = next

			parsed, err := strconv.ParseInt(value, 10, 32)
			if err != nil {
				return nil, argumentErrorf("Supplied interval value %s is not a number", value)
			}
			if parsed < 0 {
				parsed = 0
			}
			acc.interval = time.Duration(parsed) * time.Millisecond

		case strings.HasPrefix(lower, "--report="), lower == "--report":
			value, next, err := optionValue(tokens, i, "--report", "a file name")
			if err != nil {
				return nil, err
			}
			i = next
			p.ReportPath = value

		default:
			log.WithField("option", token).Debug("ignoring unknown option")
		}
	}

	return p, nil
}

// optionValue returns the value of the option at tokens[i], given either as
// "--name=value" or as the following token, and the index of the last token
// it consumed.
func optionValue(tokens []string, i int, name, what string) (string, int, error) {
	token := tokens[i]
	if len(token) > len(name) {
		return token[len(name)+1:], i, nil
	}
	if i+1 >= len(tokens) {
		return "", i, argumentErrorf("Expected %s after %s", what, name)
	}
	return tokens[i+1], i + 1, nil
}

func newTarget(token string, acc accumulator) (waiter.Target, error) {
	expanded, err := helper.ExpandURL(token)
	if err != nil {
		return waiter.Target{}, &MalformedURLError{URL: token, Err: errors.Wrap(err, "could not render URL template")}
	}

	u, err := url.Parse(expanded)
	if err != nil {
		return waiter.Target{}, &MalformedURLError{URL: token, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return waiter.Target{}, &MalformedURLError{URL: token, Err: errors.Errorf("unsupported protocol %q", u.Scheme)}
	}
	if u.Host == "" {
		return waiter.Target{}, &MalformedURLError{URL: token, Err: errors.New("missing host")}
	}

	return waiter.Target{
		Name:     expanded,
		URL:      u,
		Timeout:  acc.timeout,
		Interval: acc.interval,
	}, nil
}
