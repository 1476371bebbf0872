package chroma_test

import (
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/gitwebhl"
	"github.com/fwojciec/gitwebhl/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() gitwebhl.Palette {
	return gitwebhl.Palette{
		Keyword:     "#c678dd",
		String:      "#98c379",
		Number:      "#d19a66",
		Comment:     "#5c6370",
		Operator:    "#56b6c2",
		Function:    "#61afef",
		Type:        "#e5c07b",
		Constant:    "#d19a66",
		Punctuation: "#abb2bf",
	}
}

func TestStyleFromPalette(t *testing.T) {
	t.Parallel()

	p := testPalette()
	styleFunc := chroma.StyleFromPalette(p)

	tests := []struct {
		name  string
		token chromalib.TokenType
		want  gitwebhl.Style
	}{
		{"shebang line stands out from comments", chromalib.CommentHashbang, gitwebhl.Style{Foreground: p.Comment, Bold: true}},
		{"single line comment", chromalib.CommentSingle, gitwebhl.Style{Foreground: p.Comment}},
		{"preprocessor directive", chromalib.CommentPreprocFile, gitwebhl.Style{Foreground: p.Keyword}},
		{"keyword subtype takes the keyword color", chromalib.KeywordNamespace, gitwebhl.Style{Foreground: p.Keyword, Bold: true}},
		{"type keyword", chromalib.KeywordType, gitwebhl.Style{Foreground: p.Type, Bold: true}},
		{"constant keyword", chromalib.KeywordConstant, gitwebhl.Style{Foreground: p.Constant}},
		{"markup tag", chromalib.NameTag, gitwebhl.Style{Foreground: p.Keyword}},
		{"markup attribute", chromalib.NameAttribute, gitwebhl.Style{Foreground: p.Type}},
		{"builtin function", chromalib.NameBuiltin, gitwebhl.Style{Foreground: p.Function}},
		{"heredoc string", chromalib.LiteralStringHeredoc, gitwebhl.Style{Foreground: p.String}},
		{"hex number", chromalib.LiteralNumberHex, gitwebhl.Style{Foreground: p.Number}},
		{"word operator", chromalib.OperatorWord, gitwebhl.Style{Foreground: p.Operator}},
		{"punctuation", chromalib.Punctuation, gitwebhl.Style{Foreground: p.Punctuation}},
		{"markdown heading", chromalib.GenericHeading, gitwebhl.Style{Foreground: p.Keyword, Bold: true}},
		{"plain identifier", chromalib.NameVariable, gitwebhl.Style{}},
		{"whitespace", chromalib.TextWhitespace, gitwebhl.Style{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, styleFunc(tc.token))
		})
	}
}

func TestStyleFromPalette_ColorsAScript(t *testing.T) {
	t.Parallel()

	p := testPalette()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(p))
	require.NoError(t, err)

	lines := tokenizer.TokenizeLines([]gitwebhl.CanonicalType{"python"}, "#!/usr/bin/env python\nprint(\"hi\")\n")
	require.NotEmpty(t, lines)
	require.NotEmpty(t, lines[0])

	assert.Equal(t, "#!/usr/bin/env python", lines[0][0].Text)
	assert.Equal(t, gitwebhl.Style{Foreground: p.Comment, Bold: true}, lines[0][0].Style)
}
