// Package jsonl provides JSONL file handling for page views and decisions.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/gitwebhl"
)

// Compile-time interface verification.
var _ gitwebhl.PageViewLoader = (*Loader)(nil)

// Loader loads recorded page views from JSONL files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// maxLineSize is the maximum size for a single JSONL line (1MB).
// Page views carry only a query and a first line.
const maxLineSize = 1024 * 1024

// Load reads a JSONL file and returns all page views.
func (l *Loader) Load(path string) ([]gitwebhl.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pages []gitwebhl.Page
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var p gitwebhl.Page
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		pages = append(pages, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return pages, nil
}
