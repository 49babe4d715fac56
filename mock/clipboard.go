// Package mock provides function-field fakes of the huepick interfaces.
package mock

import "github.com/fwojciec/huepick"

// Compile-time interface verification.
var _ huepick.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of huepick.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
