package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/huepick"
	"github.com/fwojciec/huepick/chroma"
	themes "github.com/fwojciec/huepick/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Output formats accepted by convert.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Highlight modes accepted by convert.
const (
	HighlightAuto   = "auto"
	HighlightAlways = "always"
	HighlightNever  = "never"
)

// Converter prints every representation of the colors it is given.
type Converter struct {
	Out    io.Writer
	Format string
	Logger *zap.Logger

	// Highlighter colors JSON output. Nil prints plain JSON.
	Highlighter huepick.Highlighter
	Renderer    *lipgloss.Renderer
}

// Run parses each argument and writes the conversions. No output is
// written unless every argument parses.
func (c *Converter) Run(args []string) error {
	colors := make([]huepick.Color, 0, len(args))
	for i, arg := range args {
		color, err := huepick.ParseColor(arg)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		colors = append(colors, color)
	}
	if c.Logger != nil {
		c.Logger.Debug("converting colors", zap.Int("count", len(colors)), zap.String("format", c.Format))
	}

	switch c.Format {
	case "", FormatText:
		for _, color := range colors {
			if _, err := fmt.Fprintf(c.Out, "%s  %s  %s\n", color.Hex(), huepick.FormatRGB(color.RGB), huepick.FormatHSL(color.HSL)); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		swatches := make([]huepick.Swatch, len(colors))
		for i, color := range colors {
			swatches[i] = huepick.Swatch{Position: i, Hex: color.Hex(), RGB: color.RGB, HSL: color.HSL}
		}
		data, err := json.MarshalIndent(swatches, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = io.WriteString(c.Out, c.highlight(string(data))+"\n")
		return err
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Format, FormatText, FormatJSON)
	}
}

func (c *Converter) highlight(source string) string {
	if c.Highlighter == nil {
		return source
	}
	tokens := c.Highlighter.Highlight("json", source)
	if tokens == nil {
		return source
	}

	renderer := c.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	var b strings.Builder
	for _, tok := range tokens {
		if tok.Style == (huepick.Style{}) {
			b.WriteString(tok.Text)
			continue
		}
		style := renderer.NewStyle().Bold(tok.Style.Bold)
		if tok.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		}
		// Render pads multi-line input to a common width.
		lines := strings.Split(tok.Text, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteString("\n")
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}
	return b.String()
}

func newConvertCmd(s *session) *cobra.Command {
	var format, highlight string

	cmd := &cobra.Command{
		Use:   "convert COLOR...",
		Short: "Print HEX, RGB and HSL for each color",
		Example: `  huepick convert '#ff8800'
  huepick convert 'rgb(0, 128, 255)' 'hsl(120, 50%, 50%)' -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			c := &Converter{Out: out, Format: format, Logger: s.logger}

			if format == FormatJSON && highlight != HighlightNever {
				theme, err := themes.ThemeByName(s.cfg.Theme)
				if err != nil {
					return err
				}
				hl, err := chroma.NewHighlighter(chroma.StyleFromPalette(theme.Palette()))
				if err != nil {
					return err
				}
				c.Highlighter = hl
				c.Renderer = lipgloss.NewRenderer(out)
				if highlight == HighlightAlways {
					c.Renderer.SetColorProfile(termenv.TrueColor)
				}
			}
			return c.Run(args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&format, "output", "o", FormatText, "output format (text, json)")
	f.StringVar(&highlight, "highlight", HighlightAuto, "highlight JSON output (auto, always, never)")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		switch highlight {
		case HighlightAuto, HighlightAlways, HighlightNever:
			return nil
		}
		return fmt.Errorf("unknown highlight mode %q (want %s, %s or %s)", highlight, HighlightAuto, HighlightAlways, HighlightNever)
	}
	return cmd
}
