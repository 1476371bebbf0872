// Package gitwebhl provides domain types for resolving and highlighting
// files shown on gitweb blob pages.
package gitwebhl

import (
	"context"
	"errors"
	"io"
	"strings"
)

// TabReplace is the string every tab in a highlighted block is replaced with.
const TabReplace = "  "

// DefaultLineNumberColor is the color line numbers are reset to after highlighting.
const DefaultLineNumberColor = "#999999"

// Errors returned by the host-page shell. The resolution engine itself never
// returns errors; a miss is reported through Decision.
var (
	ErrNotBlobView = errors.New("page is not a blob view")
	ErrUnresolved  = errors.New("language could not be resolved")
)

// FileTypeToken identifies a file type as it appears in a path extension
// (e.g. "php5", "h", "yml"). Many tokens map to one CanonicalType.
type FileTypeToken string

// CanonicalType names a highlighter-recognized language (e.g. "php", "c", "bash").
type CanonicalType string

// LanguageName names a language runtime as it appears in a shebang (e.g. "python").
type LanguageName string

// Page is a single page view as the host page sees it.
type Page struct {
	Query     string `json:"query"`                // Raw query component of the page address
	FirstLine string `json:"first_line,omitempty"` // Text of the first source line, empty if none
}

// Source identifies which signal produced a Decision's type.
type Source string

// Decision sources.
const (
	SourceNone      Source = ""
	SourceExtension Source = "extension"
	SourceShebang   Source = "shebang"
)

// Decision is the outcome of resolving a Page.
type Decision struct {
	Page        Page            `json:"page"`
	Resolvable  bool            `json:"resolvable"`             // Page passed the blob-view gate
	PathType    CanonicalType   `json:"path_type,omitempty"`    // Type derived from the file extension
	ShebangType CanonicalType   `json:"shebang_type,omitempty"` // Type derived from the first line
	Type        CanonicalType   `json:"type,omitempty"`         // Final type after precedence
	Source      Source          `json:"source,omitempty"`
	Languages   []CanonicalType `json:"languages,omitempty"` // Allow-list handed to the highlighter
}

// OK reports whether the decision should trigger highlighting.
func (d Decision) OK() bool {
	return d.Resolvable && len(d.Languages) > 0
}

// Resolver decides which languages a page should be highlighted as.
type Resolver interface {
	// Resolve returns the decision for a page. A miss at any stage yields a
	// Decision whose OK method reports false; it is never an error.
	Resolve(page Page) Decision
}

// HighlightConfig mirrors the host page's highlighter configuration call.
type HighlightConfig struct {
	TabReplace      string          // Replacement for each tab character
	Languages       []CanonicalType // Ordered allow-list, primary type first
	LineNumberColor string          // Color line numbers are reset to
}

// Highlighter renders source blocks once configured with a language allow-list.
type Highlighter interface {
	// Configure prepares the highlighter for the given languages.
	Configure(cfg HighlightConfig) error
	// HighlightBlock writes one highlighted source block to w.
	HighlightBlock(w io.Writer, block string) error
}

// BlobRef locates a file at a revision inside a gitweb project.
type BlobRef struct {
	Project  string // gitweb "p" parameter, relative to the repository root
	Path     string // gitweb "f" parameter
	Revision string // gitweb "hb" parameter, the commit the path is relative to
	Hash     string // gitweb "h" parameter, the blob object itself
}

// Object returns the git object name for the blob. A revision with a path
// takes precedence over a blob hash; with neither, the path is read at HEAD.
func (r BlobRef) Object() string {
	switch {
	case r.Revision != "" && r.Path != "":
		return r.Revision + ":" + r.Path
	case r.Hash != "":
		return r.Hash
	default:
		return "HEAD:" + r.Path
	}
}

// BlobSource fetches file contents.
type BlobSource interface {
	Blob(ctx context.Context, ref BlobRef) (string, error)
}

// Blob is a fetched file together with the languages it resolved to.
type Blob struct {
	Ref       BlobRef
	Source    string
	Languages []CanonicalType
}

// Viewer displays a resolved blob and blocks until the user exits.
type Viewer interface {
	View(ctx context.Context, blob Blob) error
}

// Clipboard provides system clipboard access.
type Clipboard interface {
	Copy(content string) error
}

// PageViewLoader loads recorded page views.
type PageViewLoader interface {
	Load(path string) ([]Page, error)
}

// DecisionSaver persists resolution decisions.
type DecisionSaver interface {
	Save(path string, d Decision) error
}

// DecisionStore persists whole decision sets, replacing earlier contents.
type DecisionStore interface {
	Load(path string) ([]Decision, error)
	Save(path string, decisions []Decision) error
}

// FirstLine returns the first line of source without its line terminator.
func FirstLine(source string) string {
	line, _, _ := strings.Cut(source, "\n")
	return strings.TrimSuffix(line, "\r")
}
