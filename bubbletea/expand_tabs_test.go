package bubbletea_test

import (
	"testing"

	"github.com/fwojciec/gitwebhl/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		startCol int
		tabWidth int
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			tabWidth: 2,
			expected: "",
		},
		{
			name:     "no tabs",
			input:    "hello world",
			tabWidth: 2,
			expected: "hello world",
		},
		{
			name:     "single tab at start expands to tab width",
			input:    "\t",
			tabWidth: 2,
			expected: "  ",
		},
		{
			name:     "tab after one char fills to the next stop",
			input:    "a\t",
			tabWidth: 2,
			expected: "a ",
		},
		{
			name:     "nested indentation",
			input:    "\t\treturn 0;",
			tabWidth: 2,
			expected: "    return 0;",
		},
		{
			name:     "eight column stops",
			input:    "abc\tdef",
			tabWidth: 8,
			expected: "abc     def",
		},
		{
			name:     "startCol affects first tab expansion",
			input:    "\t",
			startCol: 3,
			tabWidth: 8,
			expected: "     ",
		},
		{
			name:     "unicode character before tab",
			input:    "日\t", // CJK character (width 2) + tab
			tabWidth: 8,
			expected: "日      ",
		},
		{
			name:     "non-positive width leaves tabs alone",
			input:    "a\tb",
			tabWidth: 0,
			expected: "a\tb",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := bubbletea.ExpandTabs(tt.input, tt.startCol, tt.tabWidth)
			assert.Equal(t, tt.expected, result)
		})
	}
}
