package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the color picker.
type KeyMap struct {
	// Surface navigation
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	HueDown key.Binding
	HueUp   key.Binding

	// Field focus
	NextField key.Binding
	PrevField key.Binding
	Blur      key.Binding

	// Channel fields
	Increment key.Binding
	Decrement key.Binding

	// Actions
	Commit  key.Binding
	CopyHex key.Binding
	CopyRGB key.Binding
	CopyHSL key.Binding

	// General
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "less saturation"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "more saturation"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "lighter"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "darker"),
		),
		HueDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "hue -1"),
		),
		HueUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "hue +1"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "back to surface"),
		),
		Increment: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "channel +1"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "channel -1"),
		),
		Commit: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "save to history"),
		),
		CopyHex: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "copy hex"),
		),
		CopyRGB: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "copy rgb"),
		),
		CopyHSL: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "copy hsl"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.CopyHex, k.CopyRGB, k.CopyHSL, k.NextField, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.HueDown, k.HueUp},
		{k.NextField, k.PrevField, k.Blur, k.Increment, k.Decrement},
		{k.Commit, k.CopyHex, k.CopyRGB, k.CopyHSL},
		{k.Help, k.Quit},
	}
}
