package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/gitwebhl"
	"github.com/fwojciec/gitwebhl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults for an empty path", func(t *testing.T) {
		t.Parallel()

		c, err := config.Load("")

		require.NoError(t, err)
		assert.Equal(t, config.Default(), c)
		assert.Equal(t, gitwebhl.DefaultLineNumberColor, c.LineNumberColor)
		assert.Equal(t, config.DefaultJobs, c.Jobs)
	})

	t.Run("reads settings and fills the rest", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "repo_root: /srv/git\nstyle: monokai\njobs: 8\n")

		c, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "/srv/git", c.RepoRoot)
		assert.Equal(t, "monokai", c.Style)
		assert.Equal(t, 8, c.Jobs)
		assert.Equal(t, config.DefaultTheme, c.Theme)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("returns error for malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "jobs: [1, 2\n")

		_, err := config.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("rejects invalid settings", func(t *testing.T) {
		t.Parallel()

		cases := []string{
			"jobs: -1\n",
			"line_number_color: grey\n",
			"theme: solarized\n",
		}
		for _, content := range cases {
			_, err := config.Load(writeConfig(t, content))
			require.Error(t, err, "content: %s", content)
			assert.Contains(t, err.Error(), "validation failed")
		}
	})
}
