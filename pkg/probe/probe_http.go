package probe

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/mittwald/waitforurl/internal/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type httpProbe struct {
	method    string
	userAgent string
	headers   map[string]string
	client    *http.Client
}

// NewHttpProbe returns a Prober issuing one request per attempt. Keep-alives
// are disabled so that every attempt closes its connection.
func NewHttpProbe(cfg *config.Settings) Prober {
	transport := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		DisableKeepAlives: true,
		TLSClientConfig:   &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
	}

	client := &http.Client{Transport: transport}
	if !cfg.ShouldFollowRedirects() {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	method := cfg.Method
	if method == "" {
		method = http.MethodGet
	}

	return &httpProbe{
		method:    method,
		userAgent: cfg.UserAgent,
		headers:   cfg.Headers,
		client:    client,
	}
}

func (h *httpProbe) Probe(ctx context.Context, u *url.URL, timeout time.Duration) Outcome {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, h.method, u.String(), nil)
	if err != nil {
		return Outcome{Kind: Unreachable, Err: err}
	}

	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	for k, v := range h.headers {
		// net/http takes the Host header from req.Host only
		if strings.EqualFold(k, "Host") {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}

	res, err := h.client.Do(req)
	if err != nil {
		return classifyError(err)
	}
	defer res.Body.Close()

	// drain so the server sees a complete exchange before the close
	if _, err := io.Copy(io.Discard, res.Body); err != nil {
		log.WithFields(log.Fields{"kind": "probe", "name": "http", "host": u.Host, "err": err}).Debug("could not drain response body")
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "http", "host": u.Host, "status": res.StatusCode}).Debug()
	return FromStatusCode(res.StatusCode)
}

func classifyError(err error) Outcome {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return Outcome{Kind: Refused, Err: err}
	}
	return Outcome{Kind: Unreachable, Err: err}
}
