package probe

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Kind classifies the outcome of a single probe attempt.
type Kind int

const (
	// Success is a 2xx response.
	Success Kind = iota
	// Status is any other response that is not a 404.
	Status
	// NotFound is a 404 response.
	NotFound
	// Refused means the connection was actively refused.
	Refused
	// Unreachable covers timeouts and every other transport error.
	Unreachable
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Status:
		return "status"
	case NotFound:
		return "not-found"
	case Refused:
		return "refused"
	case Unreachable:
		return "unreachable"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Outcome is the result of one probe attempt. StatusCode is only set for
// Success, Status and NotFound; Err only for Refused and Unreachable.
type Outcome struct {
	Kind       Kind
	StatusCode int
	Err        error
}

// Prober performs one attempt against u that takes at most timeout. It never
// fails; every failure is expressed as an Outcome.
type Prober interface {
	Probe(ctx context.Context, u *url.URL, timeout time.Duration) Outcome
}

// FromStatusCode classifies a received HTTP status code.
func FromStatusCode(code int) Outcome {
	switch {
	case code >= 200 && code < 300:
		return Outcome{Kind: Success, StatusCode: code}
	case code == 404:
		return Outcome{Kind: NotFound, StatusCode: code}
	default:
		return Outcome{Kind: Status, StatusCode: code}
	}
}
