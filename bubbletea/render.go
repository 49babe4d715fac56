package bubbletea

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/huepick"
)

const (
	cursorGlyph = "+"
	markerGlyph = "◀"
	swatchWidth = 12
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	l := m.layout
	lines := make([]string, 0, l.helpY+1)
	lines = append(lines, m.styleFor(m.styles.Title).Render(" huepick "), "")

	surface := m.renderSurface()
	strip := m.renderStrip()
	panel := m.renderPanel()
	blankLeft := strings.Repeat(" ", l.panelX)
	for r := 0; r < l.bodyRows(); r++ {
		var line strings.Builder
		if r < l.surfaceH {
			line.WriteString(strings.Repeat(" ", marginLeft))
			line.WriteString(surface[r])
			line.WriteString(strings.Repeat(" ", columnGap))
			line.WriteString(strip[r])
		} else {
			line.WriteString(blankLeft)
		}
		if r < len(panel) {
			line.WriteString(panel[r])
		}
		lines = append(lines, line.String())
	}

	lines = append(lines,
		"",
		m.renderHistory(),
		"",
		m.renderStatus(),
		m.help.View(m.keymap),
	)
	return strings.Join(lines, "\n")
}

// renderSurface draws one string per surface row. Each cell shows the
// color the pointer would pick there.
func (m Model) renderSurface() []string {
	l := m.layout
	rect := m.state.Layout.Surface
	hsl := m.state.Color.HSL

	cx, cy := huepick.SurfacePoint(rect, hsl.S, hsl.L)
	cursorCol := int(math.Round(cx)) - l.surfaceX
	cursorRow := int(math.Round(cy)) - l.surfaceY

	rows := make([]string, l.surfaceH)
	for j := range rows {
		var row strings.Builder
		for i := 0; i < l.surfaceW; i++ {
			s, lightness := huepick.SurfaceAt(rect, float64(l.surfaceX+i), float64(l.surfaceY+j))
			hex := huepick.HSLToRGB(huepick.HSL{H: hsl.H, S: s, L: lightness}).Hex()
			cell := m.newStyle().Background(lipgloss.Color(hex))
			if i == cursorCol && j == cursorRow {
				row.WriteString(cell.Foreground(lipgloss.Color(m.contrast.Foreground(hex))).Render(cursorGlyph))
				continue
			}
			row.WriteString(cell.Render(" "))
		}
		rows[j] = row.String()
	}
	return rows
}

// renderStrip draws the hue strip followed by the gap column that carries
// the marker for the current hue.
func (m Model) renderStrip() []string {
	l := m.layout
	strip := m.state.Layout.HueStrip
	markerRow := int(math.Round(huepick.HuePoint(strip, m.state.Color.HSL.H))) - l.surfaceY
	marker := m.styleFor(m.styles.Marker).Render(markerGlyph)
	gap := strings.Repeat(" ", columnGap)

	rows := make([]string, l.surfaceH)
	for j := range rows {
		hue := huepick.HueAt(strip, float64(l.surfaceY+j))
		hex := huepick.HSLToRGB(huepick.HSL{H: hue, S: 100, L: 50}).Hex()
		row := m.newStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", stripCols))
		if j == markerRow {
			row += marker + gap[1:]
		} else {
			row += gap
		}
		rows[j] = row
	}
	return rows
}

// renderPanel draws the swatch and the HEX, R, G, B, RGB and HSL fields.
func (m Model) renderPanel() []string {
	hex := m.state.Color.Hex()
	swatch := m.newStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(m.contrast.Foreground(hex)))
	value := m.styleFor(m.styles.Value)

	return []string{
		swatch.Render(fmt.Sprintf(" %-*s", swatchWidth-1, hex)),
		swatch.Render(strings.Repeat(" ", swatchWidth)),
		"",
		m.label("HEX", m.focus == FocusHex) + m.hexInput.View(),
		m.label("R", m.focus == FocusRed) + m.channelInputs[huepick.ChannelRed].View(),
		m.label("G", m.focus == FocusGreen) + m.channelInputs[huepick.ChannelGreen].View(),
		m.label("B", m.focus == FocusBlue) + m.channelInputs[huepick.ChannelBlue].View(),
		m.label("RGB", false) + value.Render(m.state.Display(huepick.FieldRGB)),
		m.label("HSL", false) + value.Render(m.state.Display(huepick.FieldHSL)),
	}
}

func (m Model) label(name string, focused bool) string {
	style := m.styleFor(m.styles.Label)
	if focused {
		style = m.styleFor(m.styles.Focused)
	}
	return style.Render(fmt.Sprintf("%-3s", name)) + " "
}

// renderHistory draws one swatch per saved color, most recent first. The
// swatch of the current color carries a dot.
func (m Model) renderHistory() string {
	if m.state.History.Len() == 0 {
		return strings.Repeat(" ", marginLeft) + m.styleFor(m.styles.Help).Render("no saved colors (a to save)")
	}

	current := m.state.Color.Hex()
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", marginLeft))
	for _, hex := range m.state.History.Entries() {
		style := m.newStyle().Background(lipgloss.Color(hex))
		text := strings.Repeat(" ", swatchCols)
		if hex == current {
			style = style.Foreground(lipgloss.Color(m.contrast.Foreground(hex)))
			text = " • "
		}
		b.WriteString(style.Render(text))
		b.WriteString(" ")
	}
	return b.String()
}

func (m Model) renderStatus() string {
	pad := strings.Repeat(" ", marginLeft)
	switch {
	case m.status != "" && m.statusIsError:
		return pad + m.styleFor(m.styles.Error).Render(m.status)
	case m.status != "":
		return pad + m.styleFor(m.styles.Status).Render(m.status)
	case m.inputErr != nil:
		return pad + m.styleFor(m.styles.Error).Render(m.inputErr.Error())
	default:
		return ""
	}
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// styleFor creates a lipgloss style from a ColorPair.
func (m Model) styleFor(cp huepick.ColorPair) lipgloss.Style {
	style := m.newStyle()
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}
