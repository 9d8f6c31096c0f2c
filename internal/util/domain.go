package util

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// RegistrableDomain returns the eTLD+1 for the URL host. Hosts without a
// registrable domain (IP literals, localhost, bare public suffixes) are
// returned lowercased as-is.
func RegistrableDomain(u *url.URL) string {
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" || IsIP(host) {
		return host
	}
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return d
}

// SameSite reports whether both URLs share a registrable domain.
func SameSite(a, b *url.URL) bool {
	return RegistrableDomain(a) == RegistrableDomain(b)
}
