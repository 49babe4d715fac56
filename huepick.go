// Package huepick provides the color model and interaction state of a
// terminal color picker: conversions among HSL, RGB and HEX, the geometry
// of a saturation/lightness surface and hue strip, and a session history
// of saved colors.
package huepick

import "context"

// Swatch is an exported history entry.
type Swatch struct {
	Position int    `json:"position"` // 0 is the most recently saved color
	Hex      string `json:"hex"`
	RGB      RGB    `json:"rgb"`
	HSL      HSL    `json:"hsl"`
}

// Picker runs an interactive color picking session.
type Picker interface {
	// Pick starts a session from initial and blocks until the user exits,
	// returning the final session state.
	Pick(ctx context.Context, initial State) (State, error)
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}

// SwatchStore persists and retrieves exported swatches.
type SwatchStore interface {
	Load(path string) ([]Swatch, error)
	Save(path string, swatches []Swatch) error
}

// Contraster picks a text color that stays readable on a background.
type Contraster interface {
	// Foreground returns a "#rrggbb" color for text drawn on background.
	Foreground(background string) string
}
