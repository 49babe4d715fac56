package huepick_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/huepick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  huepick.Color
	}{
		{"hex with hash", "#ff0000", huepick.DefaultColor},
		{"hex without hash", "00ff00", huepick.Color{RGB: huepick.RGB{G: 255}, HSL: huepick.HSL{H: 120, S: 100, L: 50}}},
		{"hex with surrounding space", "  #0000ff ", huepick.Color{RGB: huepick.RGB{B: 255}, HSL: huepick.HSL{H: 240, S: 100, L: 50}}},
		{"rgb notation", "rgb(255, 0, 0)", huepick.DefaultColor},
		{"rgb without spaces", "RGB(0,128,128)", huepick.Color{RGB: huepick.RGB{G: 128, B: 128}, HSL: huepick.HSL{H: 180, S: 100, L: 25}}},
		{"hsl notation keeps given hsl", "hsl(137, 0%, 50%)", huepick.Color{RGB: huepick.RGB{R: 128, G: 128, B: 128}, HSL: huepick.HSL{H: 137, S: 0, L: 50}}},
		{"hsl without percent signs", "hsl(0,100,50)", huepick.DefaultColor},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := huepick.ParseColor(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		notation huepick.Notation
	}{
		{"short hex", "#12345", huepick.NotationHex},
		{"word", "notacolor", huepick.NotationHex},
		{"rgb out of range", "rgb(256, 0, 0)", huepick.NotationRGB},
		{"rgb negative", "rgb(-1, 0, 0)", huepick.NotationRGB},
		{"rgb two components", "rgb(1, 2)", huepick.NotationRGB},
		{"rgb unclosed", "rgb(1, 2, 3", huepick.NotationRGB},
		{"rgb float", "rgb(1.5, 2, 3)", huepick.NotationRGB},
		{"hsl hue 360", "hsl(360, 100%, 50%)", huepick.NotationHSL},
		{"hsl saturation over 100", "hsl(0, 101%, 50%)", huepick.NotationHSL},
		{"hsl empty component", "hsl(0, , 50%)", huepick.NotationHSL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := huepick.ParseColor(tt.input)

			var perr *huepick.ParseError
			require.True(t, errors.As(err, &perr), "want *ParseError, got %v", err)
			assert.Equal(t, tt.notation, perr.Notation)
			assert.Equal(t, tt.input, perr.Input)
		})
	}
}
