package chroma

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/gitwebhl"
)

// Compile-time interface verification.
var _ gitwebhl.Highlighter = (*Highlighter)(nil)

// ErrNotConfigured is returned when a block is highlighted before Configure.
var ErrNotConfigured = errors.New("chroma: highlighter not configured")

// DefaultStyle is the chroma style used when none is given.
const DefaultStyle = "github"

// Highlighter renders source blocks as HTML with inline styles.
type Highlighter struct {
	styleName string

	cfg       gitwebhl.HighlightConfig
	style     *chromalib.Style
	formatter *html.Formatter
}

// NewHighlighter creates a highlighter using the named chroma style.
// Unknown names fall back to chroma's default style.
func NewHighlighter(styleName string) *Highlighter {
	if styleName == "" {
		styleName = DefaultStyle
	}
	return &Highlighter{styleName: styleName}
}

// Configure sets the language allow-list, the tab replacement and the line
// number color used by subsequent HighlightBlock calls.
func (h *Highlighter) Configure(cfg gitwebhl.HighlightConfig) error {
	if len(cfg.Languages) == 0 {
		return errors.New("chroma: no languages configured")
	}

	style := styles.Get(h.styleName)
	if cfg.LineNumberColor != "" {
		var err error
		style, err = style.Builder().Add(chromalib.LineNumbers, cfg.LineNumberColor).Build()
		if err != nil {
			return fmt.Errorf("chroma: line number color %q: %w", cfg.LineNumberColor, err)
		}
	}

	h.cfg = cfg
	h.style = style
	h.formatter = html.New(
		html.WithLineNumbers(true),
		html.WithClasses(false),
	)
	return nil
}

// HighlightBlock writes one block as highlighted HTML. Blocks no listed
// language can tokenise are written as plain escaped text.
func (h *Highlighter) HighlightBlock(w io.Writer, block string) error {
	if h.formatter == nil {
		return ErrNotConfigured
	}
	if h.cfg.TabReplace != "" {
		block = strings.ReplaceAll(block, "\t", h.cfg.TabReplace)
	}

	lexer := selectLexer(h.cfg.Languages, block)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, block)
	if err != nil {
		return fmt.Errorf("chroma: tokenise: %w", err)
	}
	return h.formatter.Format(w, h.style, iterator)
}
