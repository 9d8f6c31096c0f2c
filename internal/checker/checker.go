// Package checker issues a single GET against a target and reports whether
// the response offered a redirect. Redirects are never followed.
package checker

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/selimozcann/RedirectCheck/internal/model"
	"github.com/selimozcann/RedirectCheck/internal/statuscolor"
)

var (
	// ErrNoLocation is returned by Location when the header is absent.
	ErrNoLocation = errors.New("location header missing")
	// ErrLocationNotText is returned by Location when the header value holds
	// bytes outside visible ASCII.
	ErrLocationNotText = errors.New("location header is not valid text")
)

type logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}

// Checker wraps an HTTP client configured not to follow redirects.
type Checker struct {
	client *http.Client
	log    logger
}

// New creates a Checker. A nil logger discards diagnostics.
func New(c *http.Client, l logger) *Checker {
	if l == nil {
		l = nopLogger{}
	}
	return &Checker{client: c, log: l}
}

// Check sends exactly one GET to target and classifies the response.
func (c *Checker) Check(ctx context.Context, target string) (out model.Outcome) {
	out = model.Outcome{Target: target, StartedAt: time.Now()}
	defer func() { out.DurationMs = time.Since(out.StartedAt).Milliseconds() }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.fail(&out, err)
		return out
	}

	c.log.Debugf("GET %s", target)
	resp, err := c.client.Do(req)
	if err != nil {
		c.fail(&out, err)
		return out
	}
	// body is never read
	_ = resp.Body.Close()

	out.StatusCode = resp.StatusCode
	out.Kind = model.KindNoRedirect
	c.log.Debugf("%s answered %s in %s", target, statuscolor.Sprint(resp.StatusCode), time.Since(out.StartedAt).Round(time.Millisecond))

	if !IsRedirection(resp.StatusCode) {
		return out
	}

	loc, err := Location(resp.Header)
	switch {
	case err == nil:
		out.Kind = model.KindRedirect
		out.Location = loc
	case errors.Is(err, ErrLocationNotText):
		c.log.Warnf("%s returned %d with an undecodable Location header; reporting no redirect", target, resp.StatusCode)
	default:
		c.log.Infof("%s returned %d without a Location header", target, resp.StatusCode)
	}
	return out
}

func (c *Checker) fail(out *model.Outcome, err error) {
	out.Kind = model.KindRequestFailed
	out.Error = err.Error()
	out.Timeout = IsTimeout(err)
	c.log.Debugf("request to %s failed (timeout=%t): %v", out.Target, out.Timeout, err)
}

// IsRedirection reports whether status is in the 3xx class.
func IsRedirection(status int) bool {
	return status >= 300 && status < 400
}

// Location returns the first Location header value. Lookup is
// case-insensitive since http.Header keys are canonicalized.
func Location(h http.Header) (string, error) {
	values := h.Values("Location")
	if len(values) == 0 {
		return "", ErrNoLocation
	}
	v := values[0]
	if !isVisibleText(v) {
		return "", ErrLocationNotText
	}
	return v, nil
}

// isVisibleText accepts visible ASCII, space and horizontal tab.
func isVisibleText(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '\t' {
			continue
		}
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// IsTimeout reports whether err was caused by a deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
