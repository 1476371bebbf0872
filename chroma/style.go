package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/gitwebhl"
)

// StyleFromPalette returns a function that maps chroma token types to palette
// colors. Token subtypes take the color of their category, so every lexer a
// page can resolve to is colored without naming each of its token types.
func StyleFromPalette(p gitwebhl.Palette) StyleFunc {
	return func(tt chromalib.TokenType) gitwebhl.Style {
		switch {
		// The interpreter line that decided the language.
		case tt == chromalib.CommentHashbang:
			return gitwebhl.Style{Foreground: p.Comment, Bold: true}
		case tt.InSubCategory(chromalib.CommentPreproc):
			return gitwebhl.Style{Foreground: p.Keyword}
		case tt.InCategory(chromalib.Comment):
			return gitwebhl.Style{Foreground: p.Comment}

		case tt == chromalib.KeywordType:
			return gitwebhl.Style{Foreground: p.Type, Bold: true}
		case tt == chromalib.KeywordConstant, tt == chromalib.NameConstant:
			return gitwebhl.Style{Foreground: p.Constant}
		case tt.InCategory(chromalib.Keyword):
			return gitwebhl.Style{Foreground: p.Keyword, Bold: true}

		// Markup embedded through associations (html, xml, php templates).
		case tt == chromalib.NameTag:
			return gitwebhl.Style{Foreground: p.Keyword}
		case tt == chromalib.NameAttribute, tt == chromalib.NameClass:
			return gitwebhl.Style{Foreground: p.Type}
		case tt == chromalib.NameFunction, tt == chromalib.NameFunctionMagic, tt == chromalib.NameBuiltin:
			return gitwebhl.Style{Foreground: p.Function}

		case tt.InSubCategory(chromalib.LiteralString):
			return gitwebhl.Style{Foreground: p.String}
		case tt.InSubCategory(chromalib.LiteralNumber):
			return gitwebhl.Style{Foreground: p.Number}
		case tt.InCategory(chromalib.Operator):
			return gitwebhl.Style{Foreground: p.Operator}
		case tt.InCategory(chromalib.Punctuation):
			return gitwebhl.Style{Foreground: p.Punctuation}

		// Markdown headings.
		case tt == chromalib.GenericHeading, tt == chromalib.GenericSubheading:
			return gitwebhl.Style{Foreground: p.Keyword, Bold: true}

		default:
			return gitwebhl.Style{}
		}
	}
}
