package huepick

// Token represents a syntax-highlighted segment of text.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply (colors, bold, etc.)
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
}

// Highlighter splits source text into styled tokens.
type Highlighter interface {
	// Highlight returns tokens for source in the given language.
	// Returns nil if the language is not supported.
	Highlight(language, source string) []Token
}
