package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/gitwebhl"
)

// lexerNames maps canonical types whose name chroma does not know directly.
var lexerNames = map[gitwebhl.CanonicalType]string{
	"apache":     "apacheconf",
	"dockerfile": "docker",
	"js":         "javascript",
	"lisp":       "common-lisp",
	"makefile":   "make",
	"objectivec": "objective-c",
	"tex":        "tex",
	"vim":        "viml",
}

// Lexer returns the chroma lexer for a canonical type, or nil if chroma has none.
func Lexer(t gitwebhl.CanonicalType) chromalib.Lexer {
	if name, ok := lexerNames[t]; ok {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return lexers.Get(string(t))
}

// Unsupported returns the types chroma has no lexer for, in input order.
func Unsupported(types []gitwebhl.CanonicalType) []gitwebhl.CanonicalType {
	var missing []gitwebhl.CanonicalType
	for _, t := range types {
		if Lexer(t) == nil {
			missing = append(missing, t)
		}
	}
	return missing
}

// selectLexer picks the lexer for a block from an allow-list. The first
// supported language is the default; another listed language wins only when
// chroma's content analysis scores it strictly higher.
func selectLexer(languages []gitwebhl.CanonicalType, source string) chromalib.Lexer {
	var best chromalib.Lexer
	var bestScore float32
	for _, t := range languages {
		lexer := Lexer(t)
		if lexer == nil {
			continue
		}
		var score float32
		if a, ok := lexer.(chromalib.Analyser); ok {
			score = a.AnalyseText(source)
		}
		if best == nil || score > bestScore {
			best, bestScore = lexer, score
		}
	}
	return best
}
