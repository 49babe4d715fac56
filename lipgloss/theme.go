// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"fmt"

	"github.com/fwojciec/huepick"
)

// Compile-time interface verification.
var _ huepick.Theme = (*Theme)(nil)

// Theme implements huepick.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  huepick.Styles
	palette huepick.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() huepick.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() huepick.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme registered under name ("dark" or "light").
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q (want dark or light)", name)
	}
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: huepick.Styles{
			Title: huepick.ColorPair{
				Foreground: "#cdd6f4", // Text
				Background: "#313244", // Dark surface
			},
			Label: huepick.ColorPair{
				Foreground: "#a6adc8", // Subtext
			},
			Value: huepick.ColorPair{
				Foreground: "#cdd6f4",
			},
			Focused: huepick.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#89b4fa", // Blue
			},
			Marker: huepick.ColorPair{
				Foreground: "#cdd6f4",
			},
			Status: huepick.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			Error: huepick.ColorPair{
				Foreground: "#f38ba8", // Red
			},
			Help: huepick.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
		},
		palette: huepick.Palette{
			// Base colors (Catppuccin Mocha)
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			// UI colors
			Accent:  "#89b4fa",
			Muted:   "#6c7086",
			Success: "#a6e3a1",
			Error:   "#f38ba8",

			// Syntax highlighting colors
			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Constant:    "#fab387",
			Punctuation: "#9399b2",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: huepick.Styles{
			Title: huepick.ColorPair{
				Foreground: "#4c4f69",
				Background: "#e6e9ef", // Light surface
			},
			Label: huepick.ColorPair{
				Foreground: "#6c6f85",
			},
			Value: huepick.ColorPair{
				Foreground: "#4c4f69",
			},
			Focused: huepick.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#1e66f5",
			},
			Marker: huepick.ColorPair{
				Foreground: "#4c4f69",
			},
			Status: huepick.ColorPair{
				Foreground: "#40a02b",
			},
			Error: huepick.ColorPair{
				Foreground: "#d20f39",
			},
			Help: huepick.ColorPair{
				Foreground: "#9ca0b0", // Muted gray for light theme
			},
		},
		palette: huepick.Palette{
			// Base colors (Catppuccin Latte)
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			// UI colors
			Accent:  "#1e66f5",
			Muted:   "#9ca0b0",
			Success: "#40a02b",
			Error:   "#d20f39",

			// Syntax highlighting colors
			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Constant:    "#fe640b",
			Punctuation: "#7c7f93",
		},
	}
}
