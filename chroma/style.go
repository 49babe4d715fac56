package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/huepick"
)

// StyleFromPalette returns a function that maps chroma token types to huepick
// styles based on the provided palette colors. Object keys share the keyword
// color so that JSON field names stand out from their values.
func StyleFromPalette(p huepick.Palette) StyleFunc {
	return func(tt chromalib.TokenType) huepick.Style {
		switch tt {
		// Constants (true, false, null)
		case chromalib.KeywordConstant, chromalib.NameConstant:
			return huepick.Style{Foreground: string(p.Constant)}

		// Keywords and object keys
		case chromalib.Keyword, chromalib.KeywordDeclaration, chromalib.KeywordNamespace,
			chromalib.KeywordPseudo, chromalib.KeywordReserved, chromalib.KeywordType,
			chromalib.NameTag:
			return huepick.Style{Foreground: string(p.Keyword), Bold: true}

		// Comments
		case chromalib.Comment, chromalib.CommentMultiline, chromalib.CommentSingle:
			return huepick.Style{Foreground: string(p.Muted)}

		// Strings
		case chromalib.String, chromalib.StringDouble, chromalib.StringSingle,
			chromalib.StringEscape:
			return huepick.Style{Foreground: string(p.String)}

		// Numbers
		case chromalib.Number, chromalib.NumberFloat, chromalib.NumberInteger,
			chromalib.NumberHex:
			return huepick.Style{Foreground: string(p.Number)}

		// Punctuation
		case chromalib.Punctuation:
			return huepick.Style{Foreground: string(p.Punctuation)}

		default:
			return huepick.Style{}
		}
	}
}
