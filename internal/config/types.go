package config

// Settings is the optional configuration file. String values may use the
// "ENV:NAME" form to read from the environment.
type Settings struct {
	Timeout            *int              `hcl:"timeout"`
	LogLevel           string            `hcl:"logLevel"`
	Method             string            `hcl:"method"`
	UserAgent          string            `hcl:"userAgent"`
	InsecureSkipVerify bool              `hcl:"insecureSkipVerify"`
	FollowRedirects    *bool             `hcl:"followRedirects"` // bool-pointer to make "true" the default
	Headers            map[string]string `hcl:"headers"`
	Report             string            `hcl:"report"`
}

// DefaultTimeout is the per-URL timeout in seconds used until a --timeout
// token changes it.
const DefaultTimeout = 300

// InitialTimeout returns the timeout that applies to URL tokens before any
// --timeout token.
func (s *Settings) InitialTimeout() int {
	if s.Timeout == nil {
		return DefaultTimeout
	}
	return *s.Timeout
}

func (s *Settings) ShouldFollowRedirects() bool {
	return s.FollowRedirects == nil || *s.FollowRedirects
}
