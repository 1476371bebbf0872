package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/gitwebhl"
)

// Compile-time interface verification.
var _ gitwebhl.DecisionStore = (*Store)(nil)

// Store persists and retrieves whole decision sets as JSONL.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads decisions from a JSONL file. Returns nil if the file doesn't exist.
func (s *Store) Load(path string) ([]gitwebhl.Decision, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var decisions []gitwebhl.Decision
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var d gitwebhl.Decision
		if err := json.Unmarshal([]byte(line), &d); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		decisions = append(decisions, d)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return decisions, nil
}

// Save writes decisions to a JSONL file, replacing its contents and creating
// parent directories if needed.
func (s *Store) Save(path string, decisions []gitwebhl.Decision) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, d := range decisions {
		data, err := json.Marshal(d)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return err
		}
		if _, err := f.WriteString("\n"); err != nil {
			return err
		}
	}

	return nil
}
