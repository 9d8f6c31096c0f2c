package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(NewMockConfig(nil))
	require.NoError(t, err)

	assert.Equal(t, Settings{TimeoutSeconds: DefaultTimeoutSeconds, Color: "auto", LogLevel: "WARN"}, s)
}

func TestLoadValues(t *testing.T) {
	s, err := Load(NewMockConfig(map[string]string{
		KeyTimeout:   " 5 ",
		KeyUserAgent: "probe/1.0",
		KeyProxy:     "http://proxy.local:3128",
		KeyInsecure:  "true",
		KeyColor:     "never",
		KeyLogLevel:  "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, 5, s.TimeoutSeconds)
	assert.Equal(t, "probe/1.0", s.UserAgent)
	assert.Equal(t, "http://proxy.local:3128", s.Proxy)
	assert.True(t, s.Insecure)
	assert.Equal(t, "never", s.Color)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load(NewMockConfig(map[string]string{KeyTimeout: "-1"}))
	require.ErrorIs(t, err, ErrInvalidTimeout)

	_, err = Load(NewMockConfig(map[string]string{KeyTimeout: "1.5"}))
	require.ErrorIs(t, err, ErrInvalidTimeout)

	_, err = Load(NewMockConfig(map[string]string{KeyInsecure: "maybe"}))
	require.ErrorIs(t, err, ErrInvalidBool)
}

func TestEnvFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RC_TEST_BASE=base\nRC_TEST_OVERRIDE=base\nRC_TEST_SYSTEM=file\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".local.env"), []byte("RC_TEST_OVERRIDE=local\n"), 0o600))

	t.Setenv("RC_TEST_SYSTEM", "system")
	t.Cleanup(func() {
		_ = os.Unsetenv("RC_TEST_BASE")
		_ = os.Unsetenv("RC_TEST_OVERRIDE")
	})

	c := NewEnvFile(dir, nopLogger{})

	assert.Equal(t, "base", c.Get("RC_TEST_BASE"))
	assert.Equal(t, "local", c.Get("RC_TEST_OVERRIDE"))
	assert.Equal(t, "system", c.Get("RC_TEST_SYSTEM"))
	assert.Equal(t, "fallback", c.GetOrDefault("RC_TEST_UNSET", "fallback"))
}

func TestEnvFileMissingFolder(t *testing.T) {
	c := NewEnvFile(filepath.Join(t.TempDir(), "absent"), nopLogger{})

	assert.Equal(t, "x", c.GetOrDefault("RC_TEST_NOTHING", "x"))
}
