// Package logging writes leveled diagnostics to standard error, keeping
// standard output free for results.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Logger represents a leveled logging interface.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Noticef(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	ChangeLevel(level Level)
}

var exit = os.Exit

type logger struct {
	level      Level
	out        io.Writer
	isTerminal bool
	lock       chan struct{}
}

type logEntry struct {
	Level   Level     `json:"level"`
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

// NewLogger creates a logger writing to standard error.
func NewLogger(level Level) Logger {
	return New(level, os.Stderr)
}

// New creates a logger writing to out. Terminals get colored single-line
// output, everything else gets one JSON object per line.
func New(level Level, out io.Writer) Logger {
	return &logger{
		level:      level,
		out:        out,
		isTerminal: checkIfTerminal(out),
		lock:       make(chan struct{}, 1),
	}
}

func (l *logger) logf(level Level, format string, args ...any) {
	if level < l.level {
		return
	}

	entry := logEntry{
		Level:   level,
		Time:    time.Now(),
		Message: fmt.Sprintf(format, args...),
	}

	l.lock <- struct{}{}
	defer func() { <-l.lock }()

	if l.isTerminal {
		fmt.Fprintf(l.out, "\u001B[38;5;%dm%s\u001B[0m [%s] %s\n", level.color(), level.String()[0:4], entry.Time.Format(time.TimeOnly), entry.Message)
		return
	}
	_ = json.NewEncoder(l.out).Encode(entry)
}

func (l *logger) Debugf(format string, args ...any)  { l.logf(DEBUG, format, args...) }
func (l *logger) Infof(format string, args ...any)   { l.logf(INFO, format, args...) }
func (l *logger) Noticef(format string, args ...any) { l.logf(NOTICE, format, args...) }
func (l *logger) Warnf(format string, args ...any)   { l.logf(WARN, format, args...) }
func (l *logger) Errorf(format string, args ...any)  { l.logf(ERROR, format, args...) }

func (l *logger) Fatalf(format string, args ...any) {
	l.logf(FATAL, format, args...)

	//nolint:revive // exit status is 1 as it denotes failure as signified by Fatal log
	exit(1)
}

func (l *logger) ChangeLevel(level Level) {
	l.level = level
}

func checkIfTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return term.IsTerminal(int(v.Fd()))
	default:
		return false
	}
}
