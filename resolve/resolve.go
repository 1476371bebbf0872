// Package resolve decides which languages a gitweb blob page is highlighted as.
//
// Resolution is a pipeline of pure functions over static tables: the page
// gate, the extension lookup, the shebang override and the association
// expansion. Every stage reports a miss instead of failing, and all
// functions are safe for concurrent use.
package resolve

import (
	"strings"

	"github.com/fwojciec/gitwebhl"
)

const shebangMarker = "#!"

// Compile-time interface verification.
var _ gitwebhl.Resolver = (*Resolver)(nil)

// IsResolvableView reports whether the page identifier names a single-file
// blob view. Anything else, including an empty identifier, is a no-op page.
// The "a=blob" marker is matched as a whole field, so "a=blob_plain" and
// "a=blobdiff" pages are not blob views.
func IsResolvableView(pageIdentifier string) bool {
	if pageIdentifier == "" {
		return false
	}
	v, ok := lookup(pageIdentifier, actionKey)
	return ok && v == blobAction
}

// FromPath derives a canonical type from the file field of the page identifier.
// The extension token is lower-cased first, so "MAIN.C" resolves like "main.c".
func FromPath(pageIdentifier string) (gitwebhl.CanonicalType, bool) {
	path, ok := value(pageIdentifier, fileKey)
	if !ok {
		return "", false
	}
	return FromToken(pathToken(path))
}

// pathToken returns the extension of the last path segment, or the whole
// segment when it has no extension.
func pathToken(path string) gitwebhl.FileTypeToken {
	segment := path[strings.LastIndex(path, "/")+1:]
	ext := segment[strings.LastIndex(segment, ".")+1:]
	return gitwebhl.FileTypeToken(strings.ToLower(ext))
}

// FromToken maps an extension token to its canonical type. A token that is
// itself canonical maps to itself.
func FromToken(tok gitwebhl.FileTypeToken) (gitwebhl.CanonicalType, bool) {
	if tok == "" {
		return "", false
	}
	if t := gitwebhl.CanonicalType(tok); IsCanonical(t) {
		return t, true
	}
	for t, toks := range synonyms {
		for _, s := range toks {
			if s == tok {
				return t, true
			}
		}
	}
	return "", false
}

// FromShebang derives a canonical type from an interpreter directive in the
// first line of a file. Text without a directive is a miss, not a failure.
func FromShebang(firstLine string) (gitwebhl.CanonicalType, bool) {
	parts := strings.Split(firstLine, shebangMarker)
	if len(parts) < 2 {
		return "", false
	}
	rest := parts[1]
	target := rest[strings.LastIndex(rest, "/")+1:]
	words := strings.Fields(target)
	if len(words) == 0 {
		return "", false
	}
	// "perl" and "perl -w" name the interpreter directly.
	if t, ok := executables[gitwebhl.LanguageName(words[0])]; ok {
		return t, true
	}
	// "env python -c" goes through a launcher.
	if len(words) > 1 {
		if t, ok := executables[gitwebhl.LanguageName(words[1])]; ok {
			return t, true
		}
	}
	return "", false
}

// Expand returns t followed by its associated types in declared order.
func Expand(t gitwebhl.CanonicalType) []gitwebhl.CanonicalType {
	assoc := associations[t]
	languages := make([]gitwebhl.CanonicalType, 0, 1+len(assoc))
	languages = append(languages, t)
	return append(languages, assoc...)
}

// Resolve runs the full pipeline for a page. The shebang type, when found,
// always overrides the extension type.
func Resolve(page gitwebhl.Page) gitwebhl.Decision {
	d := gitwebhl.Decision{Page: page}
	if !IsResolvableView(page.Query) {
		return d
	}
	d.Resolvable = true

	d.PathType, _ = FromPath(page.Query)
	d.ShebangType, _ = FromShebang(page.FirstLine)

	switch {
	case d.ShebangType != "":
		d.Type, d.Source = d.ShebangType, gitwebhl.SourceShebang
	case d.PathType != "":
		d.Type, d.Source = d.PathType, gitwebhl.SourceExtension
	default:
		return d
	}
	d.Languages = Expand(d.Type)
	return d
}

// Languages returns the highlighter allow-list for a page, or nil when the
// page should be left unhighlighted.
func Languages(pageIdentifier, firstLine string) []gitwebhl.CanonicalType {
	return Resolve(gitwebhl.Page{Query: pageIdentifier, FirstLine: firstLine}).Languages
}

// Resolver implements gitwebhl.Resolver over the static tables.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the decision for a page.
func (r *Resolver) Resolve(page gitwebhl.Page) gitwebhl.Decision {
	return Resolve(page)
}

// Config returns the highlighter configuration for a decision.
func Config(d gitwebhl.Decision, lineNumberColor string) gitwebhl.HighlightConfig {
	return gitwebhl.HighlightConfig{
		TabReplace:      gitwebhl.TabReplace,
		Languages:       d.Languages,
		LineNumberColor: lineNumberColor,
	}
}
