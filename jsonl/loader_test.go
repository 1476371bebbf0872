package jsonl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/gitwebhl/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads valid JSONL file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "views.jsonl")
		content := `{"query":"p=x.git;a=blob;f=lib/app.php5"}
{"query":";a=blob;f=bin/deploy","first_line":"#!/usr/bin/env python"}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		loader := jsonl.NewLoader()
		pages, err := loader.Load(path)

		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, "p=x.git;a=blob;f=lib/app.php5", pages[0].Query)
		assert.Empty(t, pages[0].FirstLine)
		assert.Equal(t, "#!/usr/bin/env python", pages[1].FirstLine)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		t.Parallel()

		loader := jsonl.NewLoader()
		_, err := loader.Load("/nonexistent/path.jsonl")

		assert.Error(t, err)
	})

	t.Run("returns error for malformed JSON line", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "bad.jsonl")
		content := `{"query":"a=blob;f=a.c"}
not valid json
{"query":"a=blob;f=b.c"}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		loader := jsonl.NewLoader()
		_, err := loader.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("handles empty file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "empty.jsonl")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

		loader := jsonl.NewLoader()
		pages, err := loader.Load(path)

		require.NoError(t, err)
		assert.Empty(t, pages)
	})

	t.Run("skips empty lines", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "with-blanks.jsonl")
		content := `{"query":"a=blob;f=a.c"}

{"query":"a=blob;f=b.c"}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		loader := jsonl.NewLoader()
		pages, err := loader.Load(path)

		require.NoError(t, err)
		assert.Len(t, pages, 2)
	})
}
