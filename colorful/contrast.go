// Package colorful picks readable text colors using the go-colorful library.
package colorful

import (
	"github.com/fwojciec/huepick"
	colorfullib "github.com/lucasb-eyer/go-colorful"
)

// Text colors returned by Contrast.
const (
	Black = "#000000"
	White = "#ffffff"
)

// Compile-time interface verification.
var _ huepick.Contraster = (*Contrast)(nil)

// Contrast chooses black or white text by WCAG contrast ratio.
type Contrast struct{}

// NewContrast returns a new Contrast.
func NewContrast() *Contrast {
	return &Contrast{}
}

// Foreground returns Black or White, whichever contrasts more with
// background. Ties and invalid input give White.
func (c *Contrast) Foreground(background string) string {
	lum, ok := Luminance(background)
	if !ok {
		return White
	}
	if ratio(lum, 0) > ratio(1, lum) {
		return Black
	}
	return White
}

// Luminance returns the WCAG relative luminance of a hex color in [0, 1].
func Luminance(hex string) (float64, bool) {
	rgb, err := huepick.ParseHex(hex)
	if err != nil {
		return 0, false
	}
	col, err := colorfullib.Hex(rgb.Hex())
	if err != nil {
		return 0, false
	}
	r, g, b := col.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, true
}

// Ratio returns the WCAG contrast ratio between two hex colors, from 1 to 21.
func Ratio(a, b string) (float64, bool) {
	la, ok := Luminance(a)
	if !ok {
		return 0, false
	}
	lb, ok := Luminance(b)
	if !ok {
		return 0, false
	}
	if la < lb {
		la, lb = lb, la
	}
	return ratio(la, lb), true
}

func ratio(lighter, darker float64) float64 {
	return (lighter + 0.05) / (darker + 0.05)
}
