package main_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/huepick"
	"github.com/fwojciec/huepick/chroma"
	main "github.com/fwojciec/huepick/cmd/huepick"
	themes "github.com/fwojciec/huepick/lipgloss"
	"github.com/fwojciec/huepick/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestConverter_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := &main.Converter{Out: &buf, Format: main.FormatText}

	err := c.Run([]string{"#FF8800", "rgb(0, 0, 255)", "hsl(120, 50%, 50%)"})

	require.NoError(t, err)
	assert.Equal(t,
		"#ff8800  rgb(255, 136, 0)  hsl(32, 100%, 50%)\n"+
			"#0000ff  rgb(0, 0, 255)  hsl(240, 100%, 50%)\n"+
			"#40bf40  rgb(64, 191, 64)  hsl(120, 50%, 50%)\n",
		buf.String())
}

func TestConverter_DefaultFormatIsText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := &main.Converter{Out: &buf}

	require.NoError(t, c.Run([]string{"000000"}))
	assert.Equal(t, "#000000  rgb(0, 0, 0)  hsl(0, 0%, 0%)\n", buf.String())
}

func TestConverter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := &main.Converter{Out: &buf, Format: main.FormatJSON}

	require.NoError(t, c.Run([]string{"#ff0000", "#ffffff"}))

	var swatches []huepick.Swatch
	require.NoError(t, json.Unmarshal(buf.Bytes(), &swatches))
	assert.Equal(t, []huepick.Swatch{
		{Position: 0, Hex: "#ff0000", RGB: huepick.RGB{R: 255}, HSL: huepick.HSL{H: 0, S: 100, L: 50}},
		{Position: 1, Hex: "#ffffff", RGB: huepick.RGB{R: 255, G: 255, B: 255}, HSL: huepick.HSL{H: 0, S: 0, L: 100}},
	}, swatches)
	assert.NotContains(t, buf.String(), "\x1b[", "no highlighter means plain output")
}

func TestConverter_JSONHighlighted(t *testing.T) {
	t.Parallel()

	hl, err := chroma.NewHighlighter(chroma.StyleFromPalette(themes.DarkTheme().Palette()))
	require.NoError(t, err)

	var plain bytes.Buffer
	require.NoError(t, (&main.Converter{Out: &plain, Format: main.FormatJSON}).Run([]string{"#336699"}))

	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.TrueColor)
	c := &main.Converter{Out: &buf, Format: main.FormatJSON, Highlighter: hl, Renderer: r}

	require.NoError(t, c.Run([]string{"#336699"}))

	out := buf.String()
	assert.Contains(t, out, "\x1b[", "output should carry color sequences")
	assert.Equal(t, plain.String(), ansi.ReplaceAllString(out, ""), "highlighting should not change the text")
}

func TestConverter_UnsupportedLanguageFallsBack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := &main.Converter{
		Out:    &buf,
		Format: main.FormatJSON,
		Highlighter: &mock.Highlighter{
			HighlightFn: func(language, source string) []huepick.Token {
				assert.Equal(t, "json", language)
				return nil
			},
		},
	}

	require.NoError(t, c.Run([]string{"#336699"}))
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), `"hex": "#336699"`)
}

func TestConverter_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid argument", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := &main.Converter{Out: &buf}

		err := c.Run([]string{"#ff0000", "#ff00zz"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "argument 2")
		var pe *huepick.ParseError
		assert.True(t, errors.As(err, &pe))
		assert.Empty(t, buf.String(), "nothing is printed when an argument is invalid")
	})

	t.Run("out of range component", func(t *testing.T) {
		t.Parallel()

		err := (&main.Converter{Out: &bytes.Buffer{}}).Run([]string{"rgb(300, 0, 0)"})

		var pe *huepick.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, huepick.NotationRGB, pe.Notation)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		err := (&main.Converter{Out: &bytes.Buffer{}, Format: "yaml"}).Run([]string{"#ff0000"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "yaml")
	})
}
