// Package bubbletea provides a terminal UI viewer for blobs using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/gitwebhl"
)

// Compile-time interface verification.
var _ gitwebhl.Viewer = (*Viewer)(nil)

// Option configures a Model.
type Option func(*Model)

// WithRenderer sets the lipgloss renderer used for styling.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithTokenizer sets the tokenizer used for syntax highlighting.
func WithTokenizer(t gitwebhl.Tokenizer) Option {
	return func(m *Model) {
		m.tokenizer = t
	}
}

// WithClipboard enables copying the blob with the Copy binding.
func WithClipboard(c gitwebhl.Clipboard) Option {
	return func(m *Model) {
		m.clipboard = c
	}
}

// statusBarHeight is the number of rows below the viewport.
const statusBarHeight = 1

// Model is the Bubble Tea model for viewing a blob.
type Model struct {
	blob      gitwebhl.Blob
	styles    gitwebhl.Styles
	keymap    KeyMap
	renderer  *lipgloss.Renderer
	tokenizer gitwebhl.Tokenizer
	clipboard gitwebhl.Clipboard

	viewport viewport.Model
	status   string
	ready    bool
	width    int
}

// NewModel creates a new Model for the given blob and theme.
func NewModel(blob gitwebhl.Blob, theme gitwebhl.Theme, opts ...Option) Model {
	m := Model{
		blob:   blob,
		styles: theme.Styles(),
		keymap: DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Up):
			m.viewport.LineUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.LineDown(1)
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfViewUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfViewDown()
			return m, nil
		case key.Matches(msg, m.keymap.GotoTop):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.Copy):
			m.status = m.copyBlob()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := max(msg.Height-statusBarHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.render())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar()
}

// copyBlob places the blob source on the clipboard and returns the status
// message describing the outcome.
func (m Model) copyBlob() string {
	if m.clipboard == nil {
		return "clipboard unavailable"
	}
	if err := m.clipboard.Copy(m.blob.Source); err != nil {
		return fmt.Sprintf("copy failed: %v", err)
	}
	return "copied " + blobName(m.blob.Ref)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if left == "" {
		left = fmt.Sprintf("%d%%", int(m.viewport.ScrollPercent()*100))
	}
	help := make([]string, 0, len(m.keymap.ShortHelp()))
	for _, b := range m.keymap.ShortHelp() {
		help = append(help, b.Help().Key+" "+b.Help().Desc)
	}
	style := styleFromColorPair(m.styles.Status, m.renderer)
	return style.Render(left + " │ " + strings.Join(help, " · "))
}

func (m Model) render() string {
	return renderBlob(renderConfig{
		blob:      m.blob,
		styles:    m.styles,
		renderer:  m.renderer,
		width:     m.width,
		tokenizer: m.tokenizer,
	})
}

// Viewer implements gitwebhl.Viewer using a Bubble Tea TUI.
type Viewer struct {
	theme     gitwebhl.Theme
	tokenizer gitwebhl.Tokenizer
	clipboard gitwebhl.Clipboard
}

// NewViewer creates a new Viewer. A nil clipboard disables copying.
func NewViewer(theme gitwebhl.Theme, tokenizer gitwebhl.Tokenizer, clipboard gitwebhl.Clipboard) *Viewer {
	return &Viewer{theme: theme, tokenizer: tokenizer, clipboard: clipboard}
}

// View displays the blob and blocks until the user exits or ctx is done.
func (v *Viewer) View(ctx context.Context, blob gitwebhl.Blob) error {
	m := NewModel(blob, v.theme, WithTokenizer(v.tokenizer), WithClipboard(v.clipboard))
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
