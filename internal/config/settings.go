package config

import (
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl"
	"github.com/mittwald/waitforurl/internal/helper"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// EnvConfigPath names the environment variable holding the path of a
// configuration file or directory.
const EnvConfigPath = "WAIT_FOR_URL_CONFIG"

// FromEnv loads the settings named by EnvConfigPath. Without that variable
// the defaults are returned.
func FromEnv() (*Settings, error) {
	path := strings.TrimSpace(os.Getenv(EnvConfigPath))
	if path == "" {
		s := &Settings{}
		if err := s.resolve(); err != nil {
			return nil, err
		}
		return s, nil
	}
	return Load(path)
}

// Load reads a configuration file, or every *.hcl file of a directory. Files
// are applied in lexical order, so later files override earlier ones.
func Load(path string) (*Settings, error) {
	path = filepath.Clean(path)

	matches, err := findFilesInPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load configuration from %s", path)
	}

	s := &Settings{}
	for _, m := range matches {
		log.Debugf("found config file: %s", m)

		contents, err := os.ReadFile(m)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read configuration file %s", m)
		}

		if err := hcl.Unmarshal(contents, s); err != nil {
			return nil, errors.Wrapf(err, "could not parse configuration file %s", m)
		}
	}

	if err := s.resolve(); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration in %s", path)
	}
	return s, nil
}

func (s *Settings) resolve() error {
	s.LogLevel = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(s.LogLevel), "warn", "logLevel")
	s.Method = strings.ToUpper(helper.SetDefaultStringIfEmpty(helper.ResolveEnv(s.Method), http.MethodGet, "method"))
	s.UserAgent = helper.ResolveEnv(s.UserAgent)
	s.Report = helper.ResolveEnv(s.Report)

	for k, v := range s.Headers {
		s.Headers[k] = helper.ResolveEnv(v)
	}

	if s.Timeout != nil && (*s.Timeout > math.MaxInt32 || *s.Timeout < math.MinInt32) {
		return errors.Errorf("timeout %d is out of range", *s.Timeout)
	}

	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return err
	}

	switch s.Method {
	case http.MethodGet, http.MethodHead:
	default:
		return errors.Errorf("unsupported request method %q", s.Method)
	}

	return nil
}
