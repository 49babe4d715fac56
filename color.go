package huepick

import (
	"fmt"
	"math"
)

// RGB represents a color with 8-bit red, green and blue channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL represents a color in the hue/saturation/lightness model.
// H is in degrees [0,360), S and L are percentages [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Color carries both numeric representations of one logical color.
// The HEX representation is always derived from RGB, which is exact.
type Color struct {
	RGB RGB
	HSL HSL
}

// DefaultColor is the color a new session starts with (pure red).
var DefaultColor = Color{
	RGB: RGB{R: 255, G: 0, B: 0},
	HSL: HSL{H: 0, S: 100, L: 50},
}

// ColorFromRGB returns a Color whose HSL is derived from c.
func ColorFromRGB(c RGB) Color {
	return Color{RGB: c, HSL: RGBToHSL(c)}
}

// ColorFromHSL returns a Color whose RGB is derived from h.
// The HSL value is stored as given so slider positions are not disturbed
// by rounding through RGB.
func ColorFromHSL(h HSL) Color {
	return Color{RGB: HSLToRGB(h), HSL: h}
}

// Hex returns the canonical "#rrggbb" form of the color.
func (c Color) Hex() string {
	return c.RGB.Hex()
}

// Hex returns the canonical "#rrggbb" form of the color.
func (c RGB) Hex() string {
	return RGBToHex(c)
}

// HSL converts the color to HSL.
func (c RGB) HSL() HSL {
	return RGBToHSL(c)
}

// String returns the CSS functional notation, e.g. "rgb(255, 0, 0)".
func (c RGB) String() string {
	return FormatRGB(c)
}

// RGB converts the color to RGB.
func (h HSL) RGB() RGB {
	return HSLToRGB(h)
}

// String returns the CSS functional notation, e.g. "hsl(0, 100%, 50%)".
func (h HSL) String() string {
	return FormatHSL(h)
}

// Normalize wraps H into [0,360) and clamps S and L to [0,100].
func (h HSL) Normalize() HSL {
	hue := h.H % 360
	if hue < 0 {
		hue += 360
	}
	return HSL{H: hue, S: clampPercent(h.S), L: clampPercent(h.L)}
}

// HSLToRGB converts an HSL color to RGB.
//
// Channels are rounded with math.Round (half away from zero) and clamped to
// [0,255]. Inputs outside the HSL domain are not validated.
func HSLToRGB(h HSL) RGB {
	r, g, b := hslToRGB(float64(h.H), float64(h.S)/100, float64(h.L)/100)
	return RGB{R: toChannel(r), G: toChannel(g), B: toChannel(b)}
}

// RGBToHSL converts an RGB color to HSL, rounding H to the nearest degree
// and S, L to the nearest percent. Gray colors report H = 0 and S = 0.
func RGBToHSL(c RGB) HSL {
	h, s, l := rgbToHSL(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	hue := int(math.Round(h))
	if hue == 360 {
		hue = 0
	}
	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// RGBToHex formats c as "#rrggbb" with lowercase digits.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FormatRGB returns the CSS functional notation of c.
func FormatRGB(c RGB) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// FormatHSL returns the CSS functional notation of h.
func FormatHSL(h HSL) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L)
}

// hslToRGB maps hue in degrees and s, l in [0,1] to channels in [0,1].
func hslToRGB(h, s, l float64) (r, g, b float64) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

// rgbToHSL maps channels in [0,1] to hue in degrees [0,360) and s, l in [0,1].
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l = (hi + lo) / 2

	// Exact tie only: near-grays still get a hue.
	if hi == lo {
		return 0, 0, l
	}

	d := hi - lo
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	switch hi {
	case r:
		h = (g - b) / d
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	h = math.Mod(h/6, 1)
	if h < 0 {
		h++
	}
	return h * 360, s, l
}

// toChannel scales a [0,1] component to a rounded, clamped 8-bit channel.
func toChannel(v float64) uint8 {
	return uint8(ClampChannel(int(math.Round(v * 255))))
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
