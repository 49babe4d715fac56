// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/huepick"
)

// Compile-time interface verification.
var _ huepick.Highlighter = (*Highlighter)(nil)

// StyleFunc maps chroma token types to huepick styles.
type StyleFunc func(chromalib.TokenType) huepick.Style

// Highlighter splits source into styled tokens using chroma lexers.
type Highlighter struct {
	styleFunc StyleFunc
}

// NewHighlighter creates a chroma-based highlighter with the given style function.
// Use StyleFromPalette to create a style function from a huepick.Palette.
func NewHighlighter(styleFunc StyleFunc) (*Highlighter, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Highlighter{styleFunc: styleFunc}, nil
}

// Highlight splits source into syntax-highlighted tokens for the given language.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source.
func (h *Highlighter) Highlight(language, source string) []huepick.Token {
	if source == "" {
		return []huepick.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []huepick.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, huepick.Token{
			Text:  token.Value,
			Style: h.styleFunc(token.Type),
		})
	}
	return tokens
}
