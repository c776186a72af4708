package waiter

import (
	"fmt"
	"net/url"
	"time"
)

// Target is one URL to wait for. A Timeout of zero or less disables the
// deadline.
type Target struct {
	Name     string
	URL      *url.URL
	Timeout  int
	Interval time.Duration
}

// Result describes a finished wait, successful or not.
type Result struct {
	URL        string
	Timeout    int
	OK         bool
	StatusCode int
	Attempts   int
	Elapsed    time.Duration
}

type FailureReason int

const (
	NeverResponded FailureReason = iota
	LastStatusNotOK
)

// Failure is returned by Wait when the deadline passed without a 2xx
// response.
type Failure struct {
	Reason     FailureReason
	URL        string
	Timeout    int
	StatusCode int
}

func (f *Failure) Error() string {
	if f.Reason == NeverResponded {
		return fmt.Sprintf("No response from %s after %d seconds", f.URL, f.Timeout)
	}
	return fmt.Sprintf("Last response from %s after %d seconds was HTTP/%d", f.URL, f.Timeout, f.StatusCode)
}
