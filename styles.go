package huepick

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for the picker chrome.
type Styles struct {
	Title   ColorPair // Header line
	Label   ColorPair // Field labels (HEX, RGB, HSL)
	Value   ColorPair // Field values
	Focused ColorPair // Label of the focused field
	Marker  ColorPair // Hue strip marker
	Status  ColorPair // Status line (copy feedback)
	Error   ColorPair // Invalid input notices
	Help    ColorPair // Key hints
}

// PaletteColor is a hex color string in "#rrggbb" form.
type PaletteColor string

// Palette holds the semantic colors of a theme.
type Palette struct {
	// Base colors
	Background PaletteColor
	Foreground PaletteColor

	// UI colors
	Accent  PaletteColor
	Muted   PaletteColor
	Success PaletteColor
	Error   PaletteColor

	// Syntax highlighting colors
	Keyword     PaletteColor
	String      PaletteColor
	Number      PaletteColor
	Constant    PaletteColor
	Punctuation PaletteColor
}

// Theme provides styles for rendering the picker.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
