package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/huepick"
)

// Compile-time interface verification.
var _ huepick.Picker = (*Picker)(nil)

// Picker implements huepick.Picker using a Bubble Tea TUI.
type Picker struct {
	opts []ModelOption
}

// NewPicker creates a new Picker. The options configure every session's Model.
func NewPicker(opts ...ModelOption) *Picker {
	return &Picker{opts: opts}
}

// Pick runs an interactive session and blocks until the user exits or ctx
// is cancelled. The final state is returned in both cases.
func (p *Picker) Pick(ctx context.Context, initial huepick.State) (huepick.State, error) {
	m := NewModel(initial, p.opts...)
	prog := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	final, err := prog.Run()
	state := initial
	if fm, ok := final.(Model); ok {
		state = fm.State()
	}
	if err != nil {
		return state, fmt.Errorf("run picker: %w", err)
	}
	return state, nil
}
