package gitwebhl

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for the visual elements of a blob view.
type Styles struct {
	Header     ColorPair // Style for the file header (path and languages)
	LineNumber ColorPair // Style for line numbers in the gutter
	Gutter     ColorPair // Style for the separator between gutter and source
	Source     ColorPair // Style for source text without a syntax color
	Status     ColorPair // Style for the status line
}

// Palette defines the semantic colors used for syntax highlighting.
type Palette struct {
	// Base colors
	Background string
	Foreground string

	// Syntax highlighting colors
	Keyword     string
	String      string
	Number      string
	Comment     string
	Operator    string
	Function    string
	Type        string
	Constant    string
	Punctuation string

	// UI colors
	UIBackground string
	UIForeground string
	UIAccent     string
}

// Theme provides styles for rendering blobs.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
