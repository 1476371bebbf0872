package bubbletea_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/gitwebhl"
	"github.com/fwojciec/gitwebhl/bubbletea"
	"github.com/fwojciec/gitwebhl/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// testTheme is a fixed theme so tests do not depend on the lipgloss package.
type testTheme struct{}

func (testTheme) Styles() gitwebhl.Styles {
	return gitwebhl.Styles{
		Header:     gitwebhl.ColorPair{Foreground: "#ffff00"},
		LineNumber: gitwebhl.ColorPair{Foreground: "#999999"},
		Gutter:     gitwebhl.ColorPair{Foreground: "#444444"},
	}
}

func (testTheme) Palette() gitwebhl.Palette {
	return gitwebhl.Palette{}
}

func testBlob() gitwebhl.Blob {
	return gitwebhl.Blob{
		Ref:       gitwebhl.BlobRef{Project: "app.git", Path: "src/main.c"},
		Source:    "int main(void) {\n\treturn 0;\n}\n",
		Languages: []gitwebhl.CanonicalType{"c"},
	}
}

// sized sends a window size message and returns the updated model.
func sized(t *testing.T, m bubbletea.Model, width, height int) bubbletea.Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model, ok := updated.(bubbletea.Model)
	require.True(t, ok)
	return model
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	t.Run("shows loading before the first window size", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewModel(testBlob(), testTheme{})

		assert.Equal(t, "Loading...", m.View())
	})

	t.Run("renders header with path and languages", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(testBlob(), testTheme{}), 80, 24)
		view := m.View()

		assert.Contains(t, view, "app.git:src/main.c")
		assert.Contains(t, view, "[c]")
	})

	t.Run("names hash-only blobs by their hash", func(t *testing.T) {
		t.Parallel()

		blob := testBlob()
		blob.Ref = gitwebhl.BlobRef{Project: "app.git", Hash: "0123abcd"}
		m := sized(t, bubbletea.NewModel(blob, testTheme{}), 80, 24)

		assert.Contains(t, m.View(), "app.git:0123abcd")
	})

	t.Run("renders numbered lines with expanded tabs", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(testBlob(), testTheme{}), 80, 24)
		view := m.View()

		assert.Contains(t, view, "   1 │ int main(void) {")
		assert.Contains(t, view, "   2 │   return 0;")
		assert.Contains(t, view, "   3 │ }")
		assert.NotContains(t, view, "\t")
	})

	t.Run("colors line numbers with the theme color", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(testBlob(), testTheme{}, bubbletea.WithRenderer(trueColorRenderer())), 80, 24)
		view := m.View()

		// #999999 is rgb(153,153,153).
		assert.Contains(t, view, "38;2;153;153;153")
	})

	t.Run("uses tokenizer output when it lines up with the source", func(t *testing.T) {
		t.Parallel()

		var gotLanguages []gitwebhl.CanonicalType
		tokenizer := &mock.Tokenizer{
			TokenizeLinesFn: func(languages []gitwebhl.CanonicalType, source string) [][]gitwebhl.Token {
				gotLanguages = languages
				var lines [][]gitwebhl.Token
				for _, line := range strings.Split(source, "\n") {
					lines = append(lines, []gitwebhl.Token{{Text: strings.ToUpper(line)}})
				}
				return lines
			},
		}

		m := sized(t, bubbletea.NewModel(testBlob(), testTheme{}, bubbletea.WithTokenizer(tokenizer)), 80, 24)

		assert.Equal(t, []gitwebhl.CanonicalType{"c"}, gotLanguages)
		assert.Contains(t, m.View(), "INT MAIN(VOID) {")
	})

	t.Run("falls back to plain text when tokens do not line up", func(t *testing.T) {
		t.Parallel()

		tokenizer := &mock.Tokenizer{
			TokenizeLinesFn: func(_ []gitwebhl.CanonicalType, _ string) [][]gitwebhl.Token {
				return nil
			},
		}

		m := sized(t, bubbletea.NewModel(testBlob(), testTheme{}, bubbletea.WithTokenizer(tokenizer)), 80, 24)

		assert.Contains(t, m.View(), "int main(void) {")
	})

	t.Run("marks empty blobs", func(t *testing.T) {
		t.Parallel()

		blob := testBlob()
		blob.Source = ""
		m := sized(t, bubbletea.NewModel(blob, testTheme{}), 80, 24)

		assert.Contains(t, m.View(), "(empty)")
	})
}

func TestModel_Copy(t *testing.T) {
	t.Parallel()

	press := func(t *testing.T, m bubbletea.Model, msg tea.KeyMsg) bubbletea.Model {
		t.Helper()
		updated, _ := m.Update(msg)
		model, ok := updated.(bubbletea.Model)
		require.True(t, ok)
		return model
	}

	t.Run("copies the blob source and reports it", func(t *testing.T) {
		t.Parallel()

		var copied string
		clip := &mock.Clipboard{
			CopyFn: func(content string) error {
				copied = content
				return nil
			},
		}
		m := sized(t, bubbletea.NewModel(testBlob(), testTheme{}, bubbletea.WithClipboard(clip)), 80, 24)

		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

		assert.Equal(t, testBlob().Source, copied)
		assert.Contains(t, m.View(), "copied src/main.c")
	})

	t.Run("reports clipboard errors in the status bar", func(t *testing.T) {
		t.Parallel()

		clip := &mock.Clipboard{
			CopyFn: func(string) error { return errors.New("no xclip") },
		}
		m := sized(t, bubbletea.NewModel(testBlob(), testTheme{}, bubbletea.WithClipboard(clip)), 80, 24)

		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

		assert.Contains(t, m.View(), "copy failed: no xclip")
	})

	t.Run("reports a missing clipboard", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(testBlob(), testTheme{}), 80, 24)

		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

		assert.Contains(t, m.View(), "clipboard unavailable")
	})
}

func TestModel_Teatest(t *testing.T) {
	t.Parallel()

	t.Run("renders content and quits on q", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewModel(testBlob(), testTheme{})
		tm := teatest.NewTestModel(t, m,
			teatest.WithInitialTermSize(80, 24),
		)

		teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
			return bytes.Contains(out, []byte("int main(void)"))
		}, teatest.WithDuration(3*time.Second))

		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
	})

	t.Run("quits on ctrl+c", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewModel(testBlob(), testTheme{})
		tm := teatest.NewTestModel(t, m,
			teatest.WithInitialTermSize(80, 24),
		)

		tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
		tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
	})
}
