package huepick

// Unrounded conversions, exposed for round-trip property tests.
var (
	HSLToRGBFloat = hslToRGB
	RGBToHSLFloat = rgbToHSL
)
