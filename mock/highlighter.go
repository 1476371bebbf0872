package mock

import (
	"io"

	"github.com/fwojciec/gitwebhl"
)

// Compile-time interface verification.
var (
	_ gitwebhl.Highlighter = (*Highlighter)(nil)
	_ gitwebhl.Tokenizer   = (*Tokenizer)(nil)
)

// Highlighter is a mock implementation of gitwebhl.Highlighter.
type Highlighter struct {
	ConfigureFn      func(cfg gitwebhl.HighlightConfig) error
	HighlightBlockFn func(w io.Writer, block string) error
}

func (h *Highlighter) Configure(cfg gitwebhl.HighlightConfig) error {
	return h.ConfigureFn(cfg)
}

func (h *Highlighter) HighlightBlock(w io.Writer, block string) error {
	return h.HighlightBlockFn(w, block)
}

// Tokenizer is a mock implementation of gitwebhl.Tokenizer.
type Tokenizer struct {
	TokenizeLinesFn func(languages []gitwebhl.CanonicalType, source string) [][]gitwebhl.Token
}

func (t *Tokenizer) TokenizeLines(languages []gitwebhl.CanonicalType, source string) [][]gitwebhl.Token {
	return t.TokenizeLinesFn(languages, source)
}
