// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/gitwebhl"
)

// Compile-time interface verification.
var _ gitwebhl.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to gitwebhl styles.
type StyleFunc func(chromalib.TokenType) gitwebhl.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromPalette to create a style function from a gitwebhl.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// TokenizeLines tokenizes source code with full context, then splits tokens by line.
// This correctly handles multi-line constructs like /* */ comments and heredocs.
// Returns nil if no listed language is supported or an error occurs.
// Returns an empty slice for empty source.
func (t *Tokenizer) TokenizeLines(languages []gitwebhl.CanonicalType, source string) [][]gitwebhl.Token {
	if source == "" {
		return [][]gitwebhl.Token{}
	}

	lexer := selectLexer(languages, source)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var allTokens []gitwebhl.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		allTokens = append(allTokens, gitwebhl.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}

	return splitTokensByLine(allTokens)
}

// splitTokensByLine splits a flat list of tokens into per-line token slices.
// Handles tokens that span multiple lines by splitting them at newline boundaries.
func splitTokensByLine(tokens []gitwebhl.Token) [][]gitwebhl.Token {
	if len(tokens) == 0 {
		return [][]gitwebhl.Token{}
	}

	var result [][]gitwebhl.Token
	var currentLine []gitwebhl.Token

	for _, tok := range tokens {
		// Token without newlines goes directly to current line
		if !strings.Contains(tok.Text, "\n") {
			currentLine = append(currentLine, tok)
			continue
		}

		// Split the token at newline boundaries
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, gitwebhl.Token{
					Text:  part,
					Style: tok.Style,
				})
			}
			// If this isn't the last part, we hit a newline - finalize the line
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	// Don't forget the last line if it has content
	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}

	return result
}
