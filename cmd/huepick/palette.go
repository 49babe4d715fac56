package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/huepick"
	"github.com/fwojciec/huepick/colorful"
	"github.com/fwojciec/huepick/jsonl"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrNoSwatches is returned when a palette file holds no swatches.
var ErrNoSwatches = errors.New("no swatches")

// PalettePrinter prints an exported swatch file.
type PalettePrinter struct {
	Out      io.Writer
	Store    huepick.SwatchStore
	Contrast huepick.Contraster
	Renderer *lipgloss.Renderer
	Logger   *zap.Logger
}

// Print writes one line per swatch: a colored block labelled with the
// swatch position followed by its HEX, RGB and HSL notations. The
// notations are derived from the stored hex.
func (p *PalettePrinter) Print(path string) error {
	swatches, err := p.Store.Load(path)
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}
	if len(swatches) == 0 {
		return fmt.Errorf("%s: %w", path, ErrNoSwatches)
	}
	if p.Logger != nil {
		p.Logger.Debug("palette loaded", zap.String("path", path), zap.Int("swatches", len(swatches)))
	}

	renderer := p.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	for _, sw := range swatches {
		rgb, err := huepick.ParseHex(sw.Hex)
		if err != nil {
			return fmt.Errorf("swatch %d: %w", sw.Position, err)
		}
		color := huepick.ColorFromRGB(rgb)
		hex := color.Hex()
		block := renderer.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(p.Contrast.Foreground(hex))).
			Render(fmt.Sprintf(" %2d ", sw.Position))
		if _, err := fmt.Fprintf(p.Out, "%s %s  %s  %s\n", block, hex, huepick.FormatRGB(color.RGB), huepick.FormatHSL(color.HSL)); err != nil {
			return err
		}
	}
	return nil
}

func newPaletteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "palette FILE",
		Short: "Print the colors of an exported swatch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := &PalettePrinter{
				Out:      out,
				Store:    jsonl.NewStore(),
				Contrast: colorful.NewContrast(),
				Renderer: lipgloss.NewRenderer(out),
				Logger:   s.logger,
			}
			return p.Print(args[0])
		},
	}
}
