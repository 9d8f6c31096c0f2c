package statuscolor

import (
	"strconv"

	"github.com/fatih/color"

	"github.com/selimozcann/RedirectCheck/internal/model"
)

// xterm 256-color palette indices.
const (
	paletteRedirect   = 214
	paletteNoRedirect = 114
	paletteFailed     = 203
	paletteGray       = 245
)

func palette(n int) *color.Color {
	return color.New(color.Attribute(38), color.Attribute(5), color.Attribute(n))
}

// ForKind returns a fresh color for the outcome category. Callers may toggle
// it with EnableColor/DisableColor without affecting others.
func ForKind(k model.Kind) *color.Color {
	switch k {
	case model.KindRedirect:
		return palette(paletteRedirect)
	case model.KindNoRedirect:
		return palette(paletteNoRedirect)
	case model.KindRequestFailed:
		return palette(paletteFailed)
	default:
		return palette(paletteGray)
	}
}

func forStatus(status int) *color.Color {
	switch {
	case status >= 500:
		return color.New(color.FgRed, color.Bold)
	case status >= 400:
		return color.New(color.FgRed)
	case status >= 300:
		return color.New(color.FgYellow)
	case status >= 200:
		return color.New(color.FgGreen)
	default:
		return palette(paletteGray)
	}
}

// Sprint returns a colorized status code (3xx yellow, 2xx green, 4xx/5xx red).
// A zero status renders as a gray dash.
func Sprint(status int) string {
	if status == 0 {
		return palette(paletteGray).Sprint("—")
	}
	return forStatus(status).Sprint(strconv.Itoa(status))
}
