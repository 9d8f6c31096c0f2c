package output

import (
	"fmt"
	"io"

	"github.com/selimozcann/RedirectCheck/internal/model"
	"github.com/selimozcann/RedirectCheck/internal/statuscolor"
)

// Line renders the one-line, uncolored summary of an outcome.
func Line(o model.Outcome) string {
	switch o.Kind {
	case model.KindRedirect:
		return "Redirect URI: " + o.Location
	case model.KindRequestFailed:
		return "Error: " + o.Error
	default:
		return "No redirect occurred."
	}
}

// Printer writes outcome lines, optionally colored per outcome kind.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Print writes the line for o followed by a newline.
func (p *Printer) Print(o model.Outcome) error {
	line := Line(o)
	if p.color {
		c := statuscolor.ForKind(o.Kind)
		c.EnableColor()
		line = c.Sprint(line)
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}
