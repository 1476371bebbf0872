package resolve

import (
	"fmt"
	"sort"

	"github.com/fwojciec/gitwebhl"
)

// synonyms maps each canonical type to the extension tokens that stand for it.
// Every canonical type is a key, even when it has no synonyms.
var synonyms = map[gitwebhl.CanonicalType][]gitwebhl.FileTypeToken{
	"apache":       {"htaccess"},
	"bash":         {"sh", "zsh", "ksh", "bashrc", "profile"},
	"c":            {"h"},
	"clojure":      {"clj", "cljs", "cljc", "edn"},
	"cmake":        {},
	"coffeescript": {"coffee"},
	"cpp":          {"cc", "cxx", "c++", "hpp", "hh", "hxx", "ipp"},
	"cs":           {"csharp"},
	"css":          {},
	"diff":         {"patch"},
	"dockerfile":   {"docker"},
	"erlang":       {"erl", "hrl"},
	"go":           {"golang"},
	"haskell":      {"hs", "lhs"},
	"html":         {"htm", "xhtml", "shtml"},
	"ini":          {"cfg", "conf", "toml"},
	"java":         {"jsp"},
	"js":           {"javascript", "mjs", "cjs", "jsx"},
	"json":         {"jsonc", "geojson"},
	"less":         {},
	"lisp":         {"el", "lsp", "cl"},
	"lua":          {},
	"makefile":     {"mk", "mak", "gnumakefile"},
	"markdown":     {"md", "mkd", "mkdn", "mdown"},
	"objectivec":   {"m", "mm"},
	"ocaml":        {"ml", "mli"},
	"perl":         {"pl", "pm", "t", "pod"},
	"php":          {"php3", "php4", "php5", "phtml", "inc"},
	"python":       {"py", "pyw", "pyi", "wsgi"},
	"r":            {},
	"ruby":         {"rb", "rake", "gemspec", "ru"},
	"rust":         {"rs"},
	"scala":        {"sbt"},
	"scheme":       {"scm", "ss"},
	"scss":         {},
	"sql":          {},
	"tcl":          {"tk"},
	"tex":          {"latex", "sty", "cls"},
	"typescript":   {"ts", "tsx", "mts"},
	"vim":          {"vimrc"},
	"xml":          {"xsl", "xslt", "xsd", "svg", "rss", "atom", "plist"},
	"yaml":         {"yml"},
}

// associations lists the grammars that stay active alongside a primary type.
// The relation is not symmetric.
var associations = map[gitwebhl.CanonicalType][]gitwebhl.CanonicalType{
	"html":     {"css", "js", "php"},
	"php":      {"css", "html", "js"},
	"xml":      {"css", "js"},
	"js":       {"json"},
	"markdown": {"html"},
}

// executables maps interpreter names to the type of the scripts they run.
// Its key set is the set of recognized language names.
var executables = map[gitwebhl.LanguageName]gitwebhl.CanonicalType{
	"bash":       "bash",
	"dash":       "bash",
	"ksh":        "bash",
	"sh":         "bash",
	"zsh":        "bash",
	"perl":       "perl",
	"perl5":      "perl",
	"python":     "python",
	"python2":    "python",
	"python3":    "python",
	"ruby":       "ruby",
	"php":        "php",
	"node":       "js",
	"nodejs":     "js",
	"lua":        "lua",
	"tclsh":      "tcl",
	"wish":       "tcl",
	"make":       "makefile",
	"runhaskell": "haskell",
	"escript":    "erlang",
	"guile":      "scheme",
	"scala":      "scala",
	"Rscript":    "r",
}

// IsCanonical reports whether t is a canonical type.
func IsCanonical(t gitwebhl.CanonicalType) bool {
	_, ok := synonyms[t]
	return ok
}

// IsRecognized reports whether name is a recognized interpreter name.
func IsRecognized(name gitwebhl.LanguageName) bool {
	_, ok := executables[name]
	return ok
}

// CanonicalTypes returns every canonical type in sorted order.
func CanonicalTypes() []gitwebhl.CanonicalType {
	types := make([]gitwebhl.CanonicalType, 0, len(synonyms))
	for t := range synonyms {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Synonyms returns a copy of the synonym set for t.
func Synonyms(t gitwebhl.CanonicalType) []gitwebhl.FileTypeToken {
	return append([]gitwebhl.FileTypeToken(nil), synonyms[t]...)
}

// Associations returns a copy of the types associated with t, in declared order.
func Associations(t gitwebhl.CanonicalType) []gitwebhl.CanonicalType {
	return append([]gitwebhl.CanonicalType(nil), associations[t]...)
}

// Executables returns a copy of the interpreter table.
func Executables() map[gitwebhl.LanguageName]gitwebhl.CanonicalType {
	m := make(map[gitwebhl.LanguageName]gitwebhl.CanonicalType, len(executables))
	for name, t := range executables {
		m[name] = t
	}
	return m
}

// CheckTables verifies the table invariants: no token is claimed by two
// types or shadows a canonical type, and every association and executable
// target is canonical.
func CheckTables() error {
	owner := make(map[gitwebhl.FileTypeToken]gitwebhl.CanonicalType)
	for _, t := range CanonicalTypes() {
		for _, tok := range synonyms[t] {
			if prev, ok := owner[tok]; ok {
				return fmt.Errorf("token %q claimed by both %q and %q", tok, prev, t)
			}
			if IsCanonical(gitwebhl.CanonicalType(tok)) {
				return fmt.Errorf("token %q of %q is itself a canonical type", tok, t)
			}
			owner[tok] = t
		}
	}
	for t, assoc := range associations {
		if !IsCanonical(t) {
			return fmt.Errorf("association key %q is not canonical", t)
		}
		for _, a := range assoc {
			if !IsCanonical(a) {
				return fmt.Errorf("association %q -> %q is not canonical", t, a)
			}
		}
	}
	for name, t := range executables {
		if !IsCanonical(t) {
			return fmt.Errorf("executable %q maps to non-canonical %q", name, t)
		}
	}
	return nil
}
