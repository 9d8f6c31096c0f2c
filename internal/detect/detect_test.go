package detect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimozcann/RedirectCheck/internal/detect"
	"github.com/selimozcann/RedirectCheck/internal/model"
)

func redirect(target, location string) model.Outcome {
	return model.Outcome{Kind: model.KindRedirect, Target: target, Location: location}
}

func findingTypes(fs []model.Finding) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Type)
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		out  model.Outcome
		want []string
	}{
		{name: "sameSiteRelative", out: redirect("https://example.com/a", "/b"), want: []string{}},
		{name: "sameSiteSubdomain", out: redirect("https://example.com/", "https://www.example.com/"), want: []string{}},
		{name: "crossSite", out: redirect("https://example.com/", "https://evil.example.net/"), want: []string{"CROSS_SITE"}},
		{name: "internal", out: redirect("https://example.com/", "http://169.254.169.254/latest"), want: []string{"INTERNAL_TARGET", "HTTPS_DOWNGRADE", "CROSS_SITE"}},
		{name: "downgradeSameSite", out: redirect("https://example.com/", "http://example.com/"), want: []string{"HTTPS_DOWNGRADE"}},
		{name: "tokenInQuery", out: redirect("https://example.com/", "/cb?access_token=abc"), want: []string{"TOKEN_LEAK"}},
		{name: "tokenInFragment", out: redirect("https://example.com/", "/cb#id_token=abc&state=1"), want: []string{"TOKEN_LEAK"}},
		{name: "noRedirect", out: model.Outcome{Kind: model.KindNoRedirect, Target: "https://example.com/"}, want: []string{}},
		{name: "failed", out: model.Outcome{Kind: model.KindRequestFailed, Target: "https://example.com/"}, want: []string{}},
		{name: "unparsableLocation", out: redirect("https://example.com/", "http://[::1"), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findingTypes(detect.Evaluate(tt.out)))
		})
	}
}

func TestResolve(t *testing.T) {
	from, to, err := detect.Resolve(redirect("https://example.com/dir/page?x=1", "../next"))
	require.NoError(t, err)
	assert.Equal(t, "example.com", from.Host)
	assert.Equal(t, "https://example.com/next", to.String())

	_, _, err = detect.Resolve(model.Outcome{Kind: model.KindNoRedirect})
	require.Error(t, err)
}

func TestTokenLeakageSeverity(t *testing.T) {
	_, to, err := detect.Resolve(redirect("https://example.com/", "/x#code=1"))
	require.NoError(t, err)

	f := detect.TokenLeakage(to)
	require.NotNil(t, f)
	assert.Equal(t, "high", f.Severity)
	assert.Equal(t, "code in fragment", f.Detail)
}
