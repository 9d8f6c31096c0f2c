package util

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func TestRegistrableDomain(t *testing.T) {
	tests := map[string]string{
		"https://www.example.com/a":   "example.com",
		"https://a.b.example.co.uk/":  "example.co.uk",
		"https://EXAMPLE.com./":       "example.com",
		"http://127.0.0.1:8080/":      "127.0.0.1",
		"http://[::1]/":               "::1",
		"http://localhost/":           "localhost",
		"https://user.github.io/page": "user.github.io",
	}
	for raw, want := range tests {
		assert.Equal(t, want, RegistrableDomain(mustParse(t, raw)), raw)
	}
}

func TestSameSite(t *testing.T) {
	assert.True(t, SameSite(mustParse(t, "https://www.example.com"), mustParse(t, "http://login.example.com/x")))
	assert.False(t, SameSite(mustParse(t, "https://example.com"), mustParse(t, "https://example.org")))
	assert.False(t, SameSite(mustParse(t, "https://alice.github.io"), mustParse(t, "https://bob.github.io")))
}

func TestIsInternalHost(t *testing.T) {
	internal := []string{"localhost", "api.localhost", "db.internal", "127.0.0.1", "10.1.2.3", "172.20.0.1", "192.168.1.1", "169.254.169.254", "::1", "fd00::1", "::ffff:127.0.0.1", "100.64.0.1"}
	for _, h := range internal {
		assert.True(t, IsInternalHost(h), h)
	}
	external := []string{"example.com", "8.8.8.8", "2001:4860:4860::8888", "172.32.0.1", ""}
	for _, h := range external {
		assert.False(t, IsInternalHost(h), h)
	}
}
