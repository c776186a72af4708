package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/mittwald/waitforurl/pkg/waiter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/pretty"
)

type Entry struct {
	URL            string  `json:"url"`
	TimeoutSeconds int     `json:"timeoutSeconds"`
	OK             bool    `json:"ok"`
	StatusCode     int     `json:"statusCode,omitempty"`
	Attempts       int     `json:"attempts"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
	Error          string  `json:"error,omitempty"`
}

// Report summarizes one run. URLs that were never checked because an
// earlier one failed are listed in Skipped.
type Report struct {
	StartedAt time.Time `json:"startedAt"`
	OK        bool      `json:"ok"`
	Results   []Entry   `json:"results"`
	Skipped   []string  `json:"skipped,omitempty"`
}

func New(startedAt time.Time) *Report {
	return &Report{StartedAt: startedAt, Results: []Entry{}}
}

// Add records the result of a wait. err is the error returned by Wait.
func (r *Report) Add(res waiter.Result, err error) {
	e := Entry{
		URL:            res.URL,
		TimeoutSeconds: res.Timeout,
		OK:             res.OK,
		StatusCode:     res.StatusCode,
		Attempts:       res.Attempts,
		ElapsedSeconds: res.Elapsed.Seconds(),
	}
	if err != nil {
		e.Error = err.Error()
	}
	r.Results = append(r.Results, e)
}

func (r *Report) Skip(url string) {
	r.Skipped = append(r.Skipped, url)
}

func (r *Report) Marshal() ([]byte, error) {
	out, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(out), nil
}

// WriteFile writes the report as indented JSON, creating the parent
// directory if needed.
func (r *Report) WriteFile(path string) error {
	out, err := r.Marshal()
	if err != nil {
		return errors.Wrap(err, "failed to encode report")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create report directory %q", filepath.Dir(path))
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write report file %q", path)
	}

	log.WithField("path", path).Debug("report written")
	return nil
}
