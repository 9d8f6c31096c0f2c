package httpclient

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config holds settings for the HTTP client.
type Config struct {
	// Timeout bounds the whole request/response cycle. Zero means no timeout.
	Timeout   time.Duration
	Proxy     string
	Headers   http.Header
	Cookie    string
	UserAgent string
	Insecure  bool
}

// headerRoundTripper wraps a base RoundTripper to inject headers and cookies.
type headerRoundTripper struct {
	base      http.RoundTripper
	headers   http.Header
	cookie    string
	userAgent string
}

func (h *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if h.base == nil {
		h.base = http.DefaultTransport
	}

	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	for k, vs := range h.headers {
		r.Header.Del(k)
		for _, v := range vs {
			r.Header.Add(k, v)
		}
	}
	if h.cookie != "" {
		r.Header.Set("Cookie", h.cookie)
	}
	if h.userAgent != "" && r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", h.userAgent)
	}
	return h.base.RoundTrip(r)
}

// New returns a configured HTTP client that never follows redirects.
func New(cfg Config) (*http.Client, error) {
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("negative timeout %s", cfg.Timeout)
	}

	proxy := http.ProxyFromEnvironment
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		if proxyURL.Scheme == "" || proxyURL.Host == "" {
			return nil, fmt.Errorf("invalid proxy URL %q: scheme and host are required", cfg.Proxy)
		}
		proxy = http.ProxyURL(proxyURL)
	}

	transport := &http.Transport{
		Proxy: proxy,
		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: cfg.Insecure, //nolint:gosec // opt-in via --insecure
		},
		DialContext: (&net.Dialer{
			Timeout:   cfg.Timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	client := &http.Client{
		Transport: &headerRoundTripper{
			base:      transport,
			headers:   cfg.Headers,
			cookie:    cfg.Cookie,
			userAgent: cfg.UserAgent,
		},
		Timeout: cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// hand the 3xx back to the caller
			return http.ErrUseLastResponse
		},
	}
	return client, nil
}

// ParseHeaders turns "Key: Value" strings into an http.Header.
func ParseHeaders(headers []string) (http.Header, error) {
	hdr := make(http.Header)
	for _, h := range headers {
		key, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header %q (expected Key: Value)", h)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			return nil, fmt.Errorf("invalid header %q (empty key)", h)
		}
		hdr.Add(key, value)
	}
	return hdr, nil
}
