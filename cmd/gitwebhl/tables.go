package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/fwojciec/gitwebhl"
	"github.com/fwojciec/gitwebhl/chroma"
	"github.com/fwojciec/gitwebhl/resolve"
)

// tableDump is the YAML shape of the resolution tables.
type tableDump struct {
	Synonyms     map[gitwebhl.CanonicalType][]gitwebhl.FileTypeToken `yaml:"synonyms"`
	Associations map[gitwebhl.CanonicalType][]gitwebhl.CanonicalType `yaml:"associations"`
	Executables  map[gitwebhl.LanguageName]gitwebhl.CanonicalType    `yaml:"executables"`
}

// WriteTables writes the resolution tables to w as YAML.
func WriteTables(w io.Writer) error {
	dump := tableDump{
		Synonyms:     make(map[gitwebhl.CanonicalType][]gitwebhl.FileTypeToken),
		Associations: make(map[gitwebhl.CanonicalType][]gitwebhl.CanonicalType),
		Executables:  resolve.Executables(),
	}
	for _, t := range resolve.CanonicalTypes() {
		dump.Synonyms[t] = resolve.Synonyms(t)
		if assoc := resolve.Associations(t); len(assoc) > 0 {
			dump.Associations[t] = assoc
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("encode tables: %w", err)
	}
	return enc.Close()
}

// CheckTables validates the table invariants and returns the canonical types
// the HTML highlighter has no grammar for.
func CheckTables() ([]gitwebhl.CanonicalType, error) {
	if err := resolve.CheckTables(); err != nil {
		return nil, err
	}
	return chroma.Unsupported(resolve.CanonicalTypes()), nil
}
