package output

import (
	"bufio"
	"encoding/json"
	"io"
	"time"

	"github.com/selimozcann/RedirectCheck/internal/detect"
	"github.com/selimozcann/RedirectCheck/internal/model"
	"github.com/selimozcann/RedirectCheck/internal/util"
)

// Record is the JSON form of a single check.
type Record struct {
	Timestamp        string          `json:"timestamp"`
	InputURL         string          `json:"input_url"`
	Type             model.Kind      `json:"type"`
	StatusCode       int             `json:"status_code,omitempty"`
	Location         *string         `json:"location,omitempty"`
	ResolvedLocation string          `json:"resolved_location,omitempty"`
	SameSite         *bool           `json:"same_site,omitempty"`
	DurationMs       int64           `json:"duration_ms"`
	Findings         []model.Finding `json:"findings,omitempty"`
	Timeout          bool            `json:"timeout,omitempty"`
	Error            string          `json:"error,omitempty"`
}

// BuildRecord converts an outcome into a Record, resolving the redirect
// target and attaching findings when one was offered.
func BuildRecord(o model.Outcome) Record {
	rec := Record{
		Timestamp:  o.StartedAt.UTC().Format(time.RFC3339),
		InputURL:   o.Target,
		Type:       o.Kind,
		StatusCode: o.StatusCode,
		DurationMs: o.DurationMs,
		Timeout:    o.Timeout,
		Error:      o.Error,
	}
	if !o.Redirected() {
		return rec
	}

	// an empty Location is still a reported redirect
	loc := o.Location
	rec.Location = &loc
	if from, to, err := detect.Resolve(o); err == nil {
		rec.ResolvedLocation = to.String()
		same := util.SameSite(from, to)
		rec.SameSite = &same
	}
	rec.Findings = detect.Evaluate(o)
	return rec
}

// WriteJSONL writes each record as a JSON line to w.
func WriteJSONL(w io.Writer, records ...Record) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}
