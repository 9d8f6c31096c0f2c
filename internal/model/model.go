package model

import "time"

// Kind classifies the outcome of a single redirect check.
type Kind string

const (
	KindRedirect      Kind = "redirect"
	KindNoRedirect    Kind = "no_redirect"
	KindRequestFailed Kind = "error"
)

// Finding is an observation about the offered redirect target.
// Severity uses a low/medium/high scale for quick triage.
type Finding struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Detail   string `json:"detail"`
}

// Outcome is the result of checking one target.
type Outcome struct {
	Kind       Kind      `json:"kind"`
	Target     string    `json:"target"`
	StatusCode int       `json:"status_code,omitempty"`
	Location   string    `json:"location,omitempty"`
	Error      string    `json:"error,omitempty"`
	Timeout    bool      `json:"timeout,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
}

// Redirected reports whether a redirect target was offered.
func (o Outcome) Redirected() bool { return o.Kind == KindRedirect }

// Failed reports whether the request could not be completed.
func (o Outcome) Failed() bool { return o.Kind == KindRequestFailed }
