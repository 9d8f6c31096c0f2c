package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntries(t *testing.T, s string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(WARN, &buf)

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	entries := decodeEntries(t, buf.String())
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "warn 3", entries[0]["message"])
	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Contains(t, entries[1], "time")
}

func TestChangeLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(ERROR, &buf)

	l.Noticef("hidden")
	l.ChangeLevel(DEBUG)
	l.Debugf("shown")

	entries := decodeEntries(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
}

func TestFatalfExits(t *testing.T) {
	var code int
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	var buf bytes.Buffer
	New(INFO, &buf).Fatalf("cannot build client: %s", "bad proxy")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), `"level":"FATAL"`)
	assert.Contains(t, buf.String(), "cannot build client: bad proxy")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{"debug": DEBUG, "INFO": INFO, " Notice ": NOTICE, "warn": WARN, "error": ERROR, "fatal": FATAL}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
