package banner

import (
	"io"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

// Fprint writes the startup banner to w. When colored is false no escape
// sequences are emitted.
func Fprint(w io.Writer, version string, colored bool) {
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	for _, c := range []*color.Color{red, cyan, green} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	fig := figure.NewFigure("RCHECK", "doom", true)
	_, _ = red.Fprint(w, fig.String())

	rule := strings.Repeat("═", 48)
	_, _ = cyan.Fprintln(w, rule)
	_, _ = green.Fprintln(w, "    Single-hop redirect checker "+version)
	_, _ = cyan.Fprintln(w, rule)
}
