package groups

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/manolakis/webrunner/internal/config/errz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGroupFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFileCollector(t *testing.T) {
	ctx := context.Background()

	t.Run("CollectsTOMLGroups", func(t *testing.T) {
		root := t.TempDir()
		writeGroupFile(t, root, "test/groups/a.toml", `
name = "a"
files = ["test/a/**/*.js"]
concurrency = 2
`)
		writeGroupFile(t, root, "test/groups/b.toml", `
name = "b"
files = ["test/b/**/*.js"]
`)

		collected, err := NewFileCollector(root).Collect(ctx, []string{"test/groups/*.toml"})
		require.NoError(t, err)
		require.Len(t, collected, 2)

		assert.Equal(t, "a", collected[0].Name)
		assert.Equal(t, []string{"test/a/**/*.js"}, collected[0].Files)
		require.NotNil(t, collected[0].Concurrency)
		assert.Equal(t, 2, *collected[0].Concurrency)

		assert.Equal(t, "b", collected[1].Name)
		assert.Nil(t, collected[1].Concurrency)
	})

	t.Run("CollectsYAMLGroups", func(t *testing.T) {
		root := t.TempDir()
		writeGroupFile(t, root, "groups/smoke.yaml", `
name: smoke
files:
  - test/smoke/*.js
browsers:
  - chromium
`)

		collected, err := NewFileCollector(root).Collect(ctx, []string{"groups/*.yaml"})
		require.NoError(t, err)
		require.Len(t, collected, 1)
		assert.Equal(t, "smoke", collected[0].Name)
		assert.Equal(t, []string{"test/smoke/*.js"}, collected[0].Files)
		assert.Equal(t, []string{"chromium"}, collected[0].Browsers)
	})

	t.Run("MultiplePatterns", func(t *testing.T) {
		root := t.TempDir()
		writeGroupFile(t, root, "groups/a.toml", `name = "a"`)
		writeGroupFile(t, root, "groups/b.yml", `name: b`)

		collected, err := NewFileCollector(root).Collect(ctx, []string{
			"groups/*.toml",
			"groups/*.yml",
		})
		require.NoError(t, err)
		assert.Len(t, collected, 2)
	})

	t.Run("UnmatchedFilesIgnored", func(t *testing.T) {
		root := t.TempDir()
		writeGroupFile(t, root, "groups/a.toml", `name = "a"`)
		writeGroupFile(t, root, "groups/readme.md", `not a group`)
		writeGroupFile(t, root, "src/index.js", `export {}`)

		collected, err := NewFileCollector(root).Collect(ctx, []string{"groups/*.toml"})
		require.NoError(t, err)
		require.Len(t, collected, 1)
		assert.Equal(t, "a", collected[0].Name)
	})

	t.Run("NodeModulesSkipped", func(t *testing.T) {
		root := t.TempDir()
		writeGroupFile(t, root, "node_modules/pkg/groups/hidden.toml", `name = "hidden"`)

		collected, err := NewFileCollector(root).Collect(ctx, []string{"**/*.toml"})
		require.NoError(t, err)
		assert.Empty(t, collected)
	})

	t.Run("NoPatterns", func(t *testing.T) {
		collected, err := NewFileCollector(t.TempDir()).Collect(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, collected)
	})

	t.Run("MissingGroupName", func(t *testing.T) {
		root := t.TempDir()
		writeGroupFile(t, root, "groups/unnamed.toml", `files = ["a.js"]`)

		_, err := NewFileCollector(root).Collect(ctx, []string{"groups/*.toml"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errz.ErrFailedToLoadGroup)
		assert.Contains(t, err.Error(), "missing group name")
	})

	t.Run("UnsupportedFormatMatched", func(t *testing.T) {
		root := t.TempDir()
		writeGroupFile(t, root, "groups/a.json", `{"name": "a"}`)

		_, err := NewFileCollector(root).Collect(ctx, []string{"groups/*"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errz.ErrFailedToLoadGroup)
		assert.Contains(t, err.Error(), "unsupported format")
	})

	t.Run("InvalidPattern", func(t *testing.T) {
		_, err := NewFileCollector(t.TempDir()).Collect(ctx, []string{"[unterminated"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errz.ErrFailedToLoadGroup)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		root := t.TempDir()
		writeGroupFile(t, root, "groups/a.toml", `name = "a"`)

		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewFileCollector(root).Collect(canceled, []string{"groups/*.toml"})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("MalformedGroupFile", func(t *testing.T) {
		root := t.TempDir()
		writeGroupFile(t, root, "groups/bad.toml", `name = [`)

		_, err := NewFileCollector(root).Collect(ctx, []string{"groups/*.toml"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errz.ErrFailedToLoadGroup)
	})
}
