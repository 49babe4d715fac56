// Package bubbletea provides an interactive terminal color picker using the
// Bubble Tea framework.
package bubbletea

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/huepick"
	"github.com/fwojciec/huepick/colorful"
	theme "github.com/fwojciec/huepick/lipgloss"
	"go.uber.org/zap"
)

// DefaultStatusTimeout is how long copy feedback stays on screen.
const DefaultStatusTimeout = 2 * time.Second

// errNoClipboard is reported when a copy is requested without a clipboard.
var errNoClipboard = errors.New("no clipboard configured")

// Focus identifies which control receives keyboard input.
type Focus int

// Focus ring order.
const (
	FocusSurface Focus = iota
	FocusHex
	FocusRed
	FocusGreen
	FocusBlue
	focusCount
)

// channel returns the RGB channel edited by a channel field.
func (f Focus) channel() (huepick.Channel, bool) {
	switch f {
	case FocusRed:
		return huepick.ChannelRed, true
	case FocusGreen:
		return huepick.ChannelGreen, true
	case FocusBlue:
		return huepick.ChannelBlue, true
	default:
		return 0, false
	}
}

// clearStatusMsg expires the status line set by copy number seq.
type clearStatusMsg struct{ seq int }

// Model is the Bubble Tea model of a color picking session. Every input is
// translated to a huepick.Event and applied to the session state.
type Model struct {
	state  huepick.State
	layout screenLayout
	ready  bool

	// Text fields
	hexInput      textinput.Model
	channelInputs [3]textinput.Model
	focus         Focus

	// Feedback
	inputErr      error // rejected HEX text, shown until the next valid input
	status        string
	statusIsError bool
	statusSeq     int
	statusTimeout time.Duration

	// Collaborators
	clipboard huepick.Clipboard
	contrast  huepick.Contraster
	logger    *zap.Logger

	// UI
	keymap   KeyMap
	help     help.Model
	styles   huepick.Styles
	renderer *lipgloss.Renderer
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithTheme sets the theme used for the picker chrome.
func WithTheme(t huepick.Theme) ModelOption {
	return func(m *Model) {
		m.styles = t.Styles()
	}
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithClipboard sets the clipboard used by the copy actions.
func WithClipboard(c huepick.Clipboard) ModelOption {
	return func(m *Model) {
		m.clipboard = c
	}
}

// WithContraster sets how text colors are chosen over color samples.
func WithContraster(c huepick.Contraster) ModelOption {
	return func(m *Model) {
		m.contrast = c
	}
}

// WithLogger sets the logger. The picker owns the terminal, so the logger
// must not write to stdout or stderr.
func WithLogger(l *zap.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithStatusTimeout sets how long copy feedback stays visible.
func WithStatusTimeout(d time.Duration) ModelOption {
	return func(m *Model) {
		m.statusTimeout = d
	}
}

// NewModel creates a Model showing the given session state.
func NewModel(initial huepick.State, opts ...ModelOption) Model {
	m := Model{
		state:         initial,
		contrast:      colorful.NewContrast(),
		logger:        zap.NewNop(),
		keymap:        DefaultKeyMap(),
		help:          help.New(),
		styles:        theme.DefaultTheme().Styles(),
		statusTimeout: DefaultStatusTimeout,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.hexInput = m.newInput(7)
	for i := range m.channelInputs {
		m.channelInputs[i] = m.newInput(3)
	}
	m.help.Styles.ShortKey = m.styleFor(m.styles.Help).Bold(true)
	m.help.Styles.ShortDesc = m.styleFor(m.styles.Help)
	m.help.Styles.ShortSeparator = m.styleFor(m.styles.Help)
	m.help.Styles.FullKey = m.help.Styles.ShortKey
	m.help.Styles.FullDesc = m.help.Styles.ShortDesc
	m.help.Styles.FullSeparator = m.help.Styles.ShortSeparator
	m.syncInputs()
	return m
}

func (m Model) newInput(limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = limit
	ti.TextStyle = m.styleFor(m.styles.Value)
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// State returns the current session state.
func (m Model) State() huepick.State {
	return m.state
}

// Focus returns the control that receives keyboard input.
func (m Model) Focus() Focus {
	return m.focus
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = computeLayout(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.ready = true
		return m.apply(huepick.Resized{Layout: m.layout.picker()}), nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusIsError = false
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	x, y := float64(msg.X), float64(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m = m.setFocus(FocusSurface)
			if i, ok := m.layout.historyIndexAt(msg.X, msg.Y); ok {
				return m.apply(huepick.HistorySelected{Index: i})
			}
			return m.apply(huepick.PointerPressed{X: x, Y: y})
		case tea.MouseButtonWheelUp:
			return m.nudgeHue(-1)
		case tea.MouseButtonWheelDown:
			return m.nudgeHue(1)
		}

	case tea.MouseActionMotion:
		return m.apply(huepick.PointerMoved{X: x, Y: y})

	case tea.MouseActionRelease:
		return m.apply(huepick.PointerReleased{X: x, Y: y})
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextField):
		return m.setFocus((m.focus + 1) % focusCount), nil

	case key.Matches(msg, m.keymap.PrevField):
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
	}

	if m.focus == FocusSurface {
		return m.handleSurfaceKey(msg)
	}
	return m.handleFieldKey(msg)
}

func (m Model) handleSurfaceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	hsl := m.state.Color.HSL

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Left):
		hsl.S--
	case key.Matches(msg, m.keymap.Right):
		hsl.S++
	case key.Matches(msg, m.keymap.Up):
		hsl.L++
	case key.Matches(msg, m.keymap.Down):
		hsl.L--
	case key.Matches(msg, m.keymap.HueDown):
		return m.nudgeHue(-1), nil
	case key.Matches(msg, m.keymap.HueUp):
		return m.nudgeHue(1), nil

	case key.Matches(msg, m.keymap.Commit):
		m = m.apply(huepick.HistoryCommitted{})
		m.logger.Debug("saved color", zap.String("hex", m.state.Color.Hex()), zap.Int("history", m.state.History.Len()))
		return m, nil

	case key.Matches(msg, m.keymap.CopyHex):
		return m.copy(huepick.FieldHex)
	case key.Matches(msg, m.keymap.CopyRGB):
		return m.copy(huepick.FieldRGB)
	case key.Matches(msg, m.keymap.CopyHSL):
		return m.copy(huepick.FieldHSL)

	default:
		return m, nil
	}
	return m.apply(huepick.HSLSet{HSL: hsl}), nil
}

func (m Model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Blur) {
		return m.setFocus(FocusSurface), nil
	}

	if ch, ok := m.focus.channel(); ok {
		v := int(ch.Get(m.state.Color.RGB))
		switch {
		case key.Matches(msg, m.keymap.Increment):
			return m.applyFromField(huepick.ChannelSet{Channel: ch, Value: v + 1}), nil
		case key.Matches(msg, m.keymap.Decrement):
			return m.applyFromField(huepick.ChannelSet{Channel: ch, Value: v - 1}), nil
		}

		input := &m.channelInputs[ch]
		before := input.Value()
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		if after := input.Value(); after != before {
			m = m.apply(huepick.ChannelEntered{Channel: ch, Text: after})
		}
		return m, cmd
	}

	before := m.hexInput.Value()
	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)
	if after := m.hexInput.Value(); after != before {
		m = m.apply(huepick.HexEntered{Text: after})
	}
	return m, cmd
}

// applyFromField applies e and rewrites the focused channel field, which
// syncInputs leaves alone while it is being typed in.
func (m Model) applyFromField(e huepick.Event) Model {
	m = m.apply(e)
	if ch, ok := m.focus.channel(); ok {
		m.channelInputs[ch].SetValue(strconv.Itoa(int(ch.Get(m.state.Color.RGB))))
	}
	return m
}

func (m Model) nudgeHue(delta int) Model {
	hsl := m.state.Color.HSL
	hsl.H += delta
	return m.apply(huepick.HSLSet{HSL: hsl})
}

// apply feeds e to the session state and refreshes the fields that are
// not being edited.
func (m Model) apply(e huepick.Event) Model {
	next, err := m.state.Apply(e)
	m.state = next
	if _, resize := e.(huepick.Resized); !resize {
		m.inputErr = err
	}
	if err != nil {
		m.logger.Debug("rejected input", zap.Error(err))
	}
	m.syncInputs()
	return m
}

func (m *Model) syncInputs() {
	if m.focus != FocusHex {
		m.hexInput.SetValue(m.state.HexText)
	}
	for i := range m.channelInputs {
		ch := huepick.Channel(i)
		if focused, ok := m.focus.channel(); ok && focused == ch {
			continue
		}
		m.channelInputs[i].SetValue(strconv.Itoa(int(ch.Get(m.state.Color.RGB))))
	}
}

func (m Model) setFocus(f Focus) Model {
	m.focus = f
	m.hexInput.Blur()
	for i := range m.channelInputs {
		m.channelInputs[i].Blur()
	}
	m.syncInputs()
	switch f {
	case FocusHex:
		m.hexInput.Focus()
		m.hexInput.CursorEnd()
	case FocusRed, FocusGreen, FocusBlue:
		ch, _ := f.channel()
		m.channelInputs[ch].Focus()
		m.channelInputs[ch].CursorEnd()
	}
	return m
}

// copy places the display string of field on the clipboard. Failures are
// reported in the status line and never end the session.
func (m Model) copy(field huepick.Field) (tea.Model, tea.Cmd) {
	text := m.state.Display(field)

	err := errNoClipboard
	if m.clipboard != nil {
		err = m.clipboard.Copy(text)
	}

	m.statusSeq++
	if err != nil {
		m.logger.Warn("copy failed", zap.Stringer("field", field), zap.Error(err))
		m.status = fmt.Sprintf("copy failed: %v", err)
		m.statusIsError = true
	} else {
		m.logger.Debug("copied", zap.Stringer("field", field), zap.String("text", text))
		m.status = "copied " + text
		m.statusIsError = false
	}

	seq := m.statusSeq
	return m, tea.Tick(m.statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
