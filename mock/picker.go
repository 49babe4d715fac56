package mock

import (
	"context"

	"github.com/fwojciec/huepick"
)

// Compile-time interface verification.
var _ huepick.Picker = (*Picker)(nil)

// Picker is a mock implementation of huepick.Picker.
type Picker struct {
	PickFn func(ctx context.Context, initial huepick.State) (huepick.State, error)
}

func (p *Picker) Pick(ctx context.Context, initial huepick.State) (huepick.State, error) {
	return p.PickFn(ctx, initial)
}
