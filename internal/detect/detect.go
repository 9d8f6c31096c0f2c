package detect

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/selimozcann/RedirectCheck/internal/model"
	"github.com/selimozcann/RedirectCheck/internal/util"
)

var tokenKeys = map[string]bool{
	"token":         true,
	"access_token":  true,
	"id_token":      true,
	"refresh_token": true,
	"code":          true,
	"session":       true,
	"bearer":        true,
}

// Resolve parses the target and resolves the outcome's Location against it.
func Resolve(o model.Outcome) (from, to *url.URL, err error) {
	if !o.Redirected() {
		return nil, nil, fmt.Errorf("outcome %q has no redirect target", o.Kind)
	}
	from, err = url.Parse(o.Target)
	if err != nil {
		return nil, nil, fmt.Errorf("parse target: %w", err)
	}
	loc, err := url.Parse(o.Location)
	if err != nil {
		return nil, nil, fmt.Errorf("parse location: %w", err)
	}
	return from, from.ResolveReference(loc), nil
}

// Evaluate runs every check against the offered redirect. Outcomes without a
// redirect, or with an unparsable Location, yield no findings.
func Evaluate(o model.Outcome) []model.Finding {
	from, to, err := Resolve(o)
	if err != nil {
		return nil
	}
	var out []model.Finding
	for _, f := range []*model.Finding{
		InternalTarget(to),
		HTTPSDowngrade(from, to),
		TokenLeakage(to),
		CrossSite(from, to),
	} {
		if f != nil {
			out = append(out, *f)
		}
	}
	return out
}

// InternalTarget checks whether the redirect points to an internal host.
func InternalTarget(u *url.URL) *model.Finding {
	if util.IsInternalHost(u.Hostname()) {
		return &model.Finding{Type: "INTERNAL_TARGET", Severity: "high", Detail: u.Host}
	}
	return nil
}

// HTTPSDowngrade reports if the scheme changed from https to http.
func HTTPSDowngrade(prev, next *url.URL) *model.Finding {
	if strings.EqualFold(prev.Scheme, "https") && strings.EqualFold(next.Scheme, "http") {
		return &model.Finding{Type: "HTTPS_DOWNGRADE", Severity: "medium", Detail: prev.String() + " -> " + next.String()}
	}
	return nil
}

// TokenLeakage detects sensitive tokens in query or fragment.
func TokenLeakage(u *url.URL) *model.Finding {
	for k := range u.Query() {
		if tokenKeys[strings.ToLower(k)] {
			return &model.Finding{Type: "TOKEN_LEAK", Severity: "medium", Detail: k + " in query"}
		}
	}
	if frag := u.Fragment; frag != "" {
		for _, part := range strings.Split(frag, "&") {
			key, _, _ := strings.Cut(part, "=")
			if tokenKeys[strings.ToLower(key)] {
				return &model.Finding{Type: "TOKEN_LEAK", Severity: "high", Detail: key + " in fragment"}
			}
		}
	}
	return nil
}

// CrossSite reports a redirect that leaves the target's registrable domain.
func CrossSite(prev, next *url.URL) *model.Finding {
	if next.Host == "" || util.SameSite(prev, next) {
		return nil
	}
	return &model.Finding{
		Type:     "CROSS_SITE",
		Severity: "low",
		Detail:   util.RegistrableDomain(prev) + " -> " + util.RegistrableDomain(next),
	}
}
