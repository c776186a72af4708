package plan

import "fmt"

// ArgumentError reports an unusable command line token.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func argumentErrorf(format string, a ...interface{}) error {
	return &ArgumentError{Message: fmt.Sprintf(format, a...)}
}

// MalformedURLError reports a URL token that cannot be used as a request URL.
type MalformedURLError struct {
	URL string
	Err error
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("Supplied URL %s is invalid: %s", e.URL, e.Err)
}

func (e *MalformedURLError) Unwrap() error {
	return e.Err
}
