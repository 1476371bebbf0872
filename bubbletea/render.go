package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/gitwebhl"
)

// renderConfig holds all rendering parameters for renderBlob.
type renderConfig struct {
	blob      gitwebhl.Blob
	styles    gitwebhl.Styles
	renderer  *lipgloss.Renderer
	width     int
	tokenizer gitwebhl.Tokenizer
}

// minGutterWidth is the minimum width of the line number column.
const minGutterWidth = 4

// tabWidth matches the width of gitwebhl.TabReplace.
var tabWidth = len(gitwebhl.TabReplace)

// renderBlob converts a blob to a styled string with a line number gutter.
// If renderer is nil, the default lipgloss renderer is used.
func renderBlob(cfg renderConfig) string {
	source := strings.TrimSuffix(cfg.blob.Source, "\n")
	lines := strings.Split(source, "\n")
	if cfg.blob.Source == "" {
		lines = nil
	}

	var tokenLines [][]gitwebhl.Token
	if cfg.tokenizer != nil && len(lines) > 0 {
		tokenLines = cfg.tokenizer.TokenizeLines(cfg.blob.Languages, source)
	}

	headerStyle := styleFromColorPair(cfg.styles.Header, cfg.renderer)
	lineNumStyle := styleFromColorPair(cfg.styles.LineNumber, cfg.renderer)
	gutterStyle := styleFromColorPair(cfg.styles.Gutter, cfg.renderer)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(formatHeader(cfg.blob, cfg.width)))
	sb.WriteString("\n")

	if len(lines) == 0 {
		sb.WriteString(lineNumStyle.Render("(empty)"))
		sb.WriteString("\n")
		return sb.String()
	}

	gutterWidth := calculateGutterWidth(len(lines))
	for i, line := range lines {
		sb.WriteString(lineNumStyle.Render(formatLineNum(i+1, gutterWidth)))
		sb.WriteString(gutterStyle.Render(" │ "))
		// Tokens are only trusted when they line up with the source.
		if len(tokenLines) == len(lines) {
			sb.WriteString(renderTokens(tokenLines[i], cfg.styles.Source, cfg.renderer))
		} else {
			sb.WriteString(styleFromColorPair(cfg.styles.Source, cfg.renderer).Render(ExpandTabs(line, 0, tabWidth)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatHeader builds "── path ──── [langs] ──" filling the terminal width.
func formatHeader(blob gitwebhl.Blob, width int) string {
	name := blobName(blob.Ref)
	if blob.Ref.Project != "" {
		name = blob.Ref.Project + ":" + name
	}
	langs := make([]string, len(blob.Languages))
	for i, l := range blob.Languages {
		langs[i] = string(l)
	}

	middle := "── " + name + " "
	end := " [" + strings.Join(langs, " ") + "] ──"

	fillWidth := width - lipgloss.Width(middle) - lipgloss.Width(end)
	if fillWidth < 3 {
		fillWidth = 3
	}
	return middle + strings.Repeat("─", fillWidth) + end
}

// blobName is the file path, or the blob hash for pages without one.
func blobName(ref gitwebhl.BlobRef) string {
	if ref.Path != "" {
		return ref.Path
	}
	return ref.Hash
}

// renderTokens styles each token, expanding tabs as it goes so that stops
// are computed from the real column.
func renderTokens(tokens []gitwebhl.Token, base gitwebhl.ColorPair, renderer *lipgloss.Renderer) string {
	var sb strings.Builder
	col := 0
	for _, tok := range tokens {
		text := ExpandTabs(tok.Text, col, tabWidth)
		col += lipgloss.Width(text)

		colors := base
		if tok.Style.Foreground != "" {
			colors.Foreground = tok.Style.Foreground
		}
		style := styleFromColorPair(colors, renderer)
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		sb.WriteString(style.Render(text))
	}
	return sb.String()
}

// calculateGutterWidth returns the width needed for numbers up to lineCount.
func calculateGutterWidth(lineCount int) int {
	width := len(fmt.Sprint(lineCount))
	if width < minGutterWidth {
		return minGutterWidth
	}
	return width
}

// formatLineNum right-aligns num in a column of the given width.
func formatLineNum(num, width int) string {
	return fmt.Sprintf("%*d", width, num)
}

func styleFromColorPair(cp gitwebhl.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}
