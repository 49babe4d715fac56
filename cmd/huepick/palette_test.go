package main_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/huepick"
	main "github.com/fwojciec/huepick/cmd/huepick"
	"github.com/fwojciec/huepick/colorful"
	"github.com/fwojciec/huepick/jsonl"
	"github.com/fwojciec/huepick/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalettePrinter_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.Ascii)
	var contrasted []string
	p := &main.PalettePrinter{
		Out: &buf,
		Store: &mock.SwatchStore{
			LoadFn: func(path string) ([]huepick.Swatch, error) {
				assert.Equal(t, "colors.jsonl", path)
				return []huepick.Swatch{
					{Position: 0, Hex: "#ff8800"},
					{Position: 1, Hex: "#FFFFFF"},
				}, nil
			},
		},
		Contrast: &mock.Contraster{
			ForegroundFn: func(background string) string {
				contrasted = append(contrasted, background)
				return "#000000"
			},
		},
		Renderer: r,
	}

	err := p.Print("colors.jsonl")

	require.NoError(t, err)
	assert.Equal(t,
		"  0  #ff8800  rgb(255, 136, 0)  hsl(32, 100%, 50%)\n"+
			"  1  #ffffff  rgb(255, 255, 255)  hsl(0, 0%, 100%)\n",
		buf.String())
	assert.Equal(t, []string{"#ff8800", "#ffffff"}, contrasted, "labels should contrast with the canonical hex")
}

func TestPalettePrinter_ColoredBlocks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.TrueColor)
	p := &main.PalettePrinter{
		Out: &buf,
		Store: &mock.SwatchStore{
			LoadFn: func(path string) ([]huepick.Swatch, error) {
				return []huepick.Swatch{{Position: 0, Hex: "#ff8800"}}, nil
			},
		},
		Contrast: colorful.NewContrast(),
		Renderer: r,
	}

	require.NoError(t, p.Print("colors.jsonl"))
	assert.Contains(t, buf.String(), "48;2;255;136;0", "block background should be the swatch color")
	assert.Contains(t, buf.String(), "38;2;0;0;0", "label should be black on orange")
}

func TestPalettePrinter_Errors(t *testing.T) {
	t.Parallel()

	t.Run("load error", func(t *testing.T) {
		t.Parallel()

		loadErr := errors.New("permission denied")
		p := &main.PalettePrinter{
			Out: &bytes.Buffer{},
			Store: &mock.SwatchStore{
				LoadFn: func(path string) ([]huepick.Swatch, error) { return nil, loadErr },
			},
			Contrast: colorful.NewContrast(),
		}

		err := p.Print("colors.jsonl")

		require.ErrorIs(t, err, loadErr)
		assert.Contains(t, err.Error(), "load palette")
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		p := &main.PalettePrinter{
			Out: &bytes.Buffer{},
			Store: &mock.SwatchStore{
				LoadFn: func(path string) ([]huepick.Swatch, error) { return nil, nil },
			},
			Contrast: colorful.NewContrast(),
		}

		err := p.Print("colors.jsonl")

		require.ErrorIs(t, err, main.ErrNoSwatches)
		assert.Contains(t, err.Error(), "colors.jsonl")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		p := &main.PalettePrinter{
			Out:      &bytes.Buffer{},
			Store:    jsonl.NewStore(),
			Contrast: colorful.NewContrast(),
		}

		err := p.Print(filepath.Join(t.TempDir(), "missing.jsonl"))

		assert.ErrorIs(t, err, main.ErrNoSwatches)
	})

	t.Run("invalid hex", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := &main.PalettePrinter{
			Out: &buf,
			Store: &mock.SwatchStore{
				LoadFn: func(path string) ([]huepick.Swatch, error) {
					return []huepick.Swatch{{Position: 3, Hex: "nope"}}, nil
				},
			},
			Contrast: colorful.NewContrast(),
		}

		err := p.Print("colors.jsonl")

		var pe *huepick.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Contains(t, err.Error(), "swatch 3")
	})
}
