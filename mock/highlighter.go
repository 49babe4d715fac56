package mock

import "github.com/fwojciec/huepick"

var (
	_ huepick.Highlighter = (*Highlighter)(nil)
	_ huepick.Contraster  = (*Contraster)(nil)
)

// Highlighter is a mock implementation of huepick.Highlighter.
type Highlighter struct {
	HighlightFn func(language, source string) []huepick.Token
}

func (h *Highlighter) Highlight(language, source string) []huepick.Token {
	return h.HighlightFn(language, source)
}

// Contraster is a mock implementation of huepick.Contraster.
type Contraster struct {
	ForegroundFn func(background string) string
}

func (c *Contraster) Foreground(background string) string {
	return c.ForegroundFn(background)
}
