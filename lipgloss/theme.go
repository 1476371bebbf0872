// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"fmt"

	"github.com/fwojciec/gitwebhl"
)

// Compile-time interface verification.
var _ gitwebhl.Theme = (*Theme)(nil)

// Theme implements gitwebhl.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  gitwebhl.Styles
	palette gitwebhl.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() gitwebhl.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() gitwebhl.Palette {
	return t.palette
}

// WithLineNumberColor returns a copy of the theme whose gutter line numbers
// use color. An empty color keeps the theme's own.
func (t *Theme) WithLineNumberColor(color string) *Theme {
	c := *t
	if color != "" {
		c.styles.LineNumber.Foreground = color
	}
	return &c
}

// ThemeByName returns the theme called "dark" or "light".
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: gitwebhl.Styles{
			Header: gitwebhl.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			LineNumber: gitwebhl.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Gutter: gitwebhl.ColorPair{
				Foreground: "#45475a", // Muted gray (subtle)
			},
			Source: gitwebhl.ColorPair{
				Foreground: "#cdd6f4",
			},
			Status: gitwebhl.ColorPair{
				Foreground: "#a6adc8",
				Background: "#313244",
			},
		},
		palette: gitwebhl.Palette{
			// Base colors (Catppuccin Mocha)
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			// Syntax highlighting colors
			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",

			// UI colors
			UIBackground: "#313244",
			UIForeground: "#a6adc8",
			UIAccent:     "#89b4fa",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: gitwebhl.Styles{
			Header: gitwebhl.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			LineNumber: gitwebhl.ColorPair{
				Foreground: "#9ca0b0", // Muted gray for light theme
			},
			Gutter: gitwebhl.ColorPair{
				Foreground: "#bcc0cc", // Muted gray (subtle for light)
			},
			Source: gitwebhl.ColorPair{
				Foreground: "#4c4f69",
			},
			Status: gitwebhl.ColorPair{
				Foreground: "#6c6f85",
				Background: "#e6e9ef",
			},
		},
		palette: gitwebhl.Palette{
			// Base colors (Catppuccin Latte)
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			// Syntax highlighting colors
			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",

			// UI colors
			UIBackground: "#e6e9ef",
			UIForeground: "#6c6f85",
			UIAccent:     "#1e66f5",
		},
	}
}
