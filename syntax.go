package gitwebhl

// Token represents a syntax-highlighted segment of code.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply (colors, bold, etc.)
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
}

// Tokenizer extracts syntax tokens from source code.
type Tokenizer interface {
	// TokenizeLines splits source into per-line tokens, choosing a grammar
	// from the given allow-list. Returns nil if no listed language is supported.
	TokenizeLines(languages []CanonicalType, source string) [][]Token
}
