package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/simplesearch"
	main "github.com/fwojciec/simplesearch/cmd/simplesearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

// newSite writes a small site with two pages and one post.
func newSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "pages/index.md", "---\ntitle: Home\n---\nWelcome to the alpha site.\n")
	writeFile(t, dir, "pages/secret.md", "---\ntitle: Secret Alpha\nno_search: true\n---\nHidden.\n")
	writeFile(t, dir, "posts/launch.md", "---\ntitle: Launch\n---\nIntro\n--- details ---\nThe beta release is here.\n")
	return dir
}

type runner struct {
	t      *testing.T
	dbPath string
}

func newRunner(t *testing.T) *runner {
	return &runner{t: t, dbPath: filepath.Join(t.TempDir(), "test.db")}
}

func (r *runner) run(args ...string) (string, string, error) {
	r.t.Helper()
	m := main.NewMain()
	m.DBPath = r.dbPath

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("imports and searches a site", func(t *testing.T) {
		t.Parallel()

		r := newRunner(t)
		site := newSite(t)

		out, _, err := r.run("import", site)
		require.NoError(t, err)
		assert.Contains(t, out, "Imported 3 documents")

		out, _, err = r.run("search", "ALPHA")
		require.NoError(t, err)
		assert.Contains(t, out, "Home")
		assert.NotContains(t, out, "Secret Alpha")

		out, _, err = r.run("search", "beta")
		require.NoError(t, err)
		assert.Contains(t, out, "Launch")
		assert.Contains(t, out, "blog/launch")
	})

	t.Run("rejects duplicate import without force", func(t *testing.T) {
		t.Parallel()

		r := newRunner(t)
		site := newSite(t)

		_, _, err := r.run("import", site)
		require.NoError(t, err)

		_, stderr, err := r.run("import", site)
		require.Error(t, err)
		assert.Contains(t, stderr, "--force")

		out, _, err := r.run("import", "--force", site)
		require.NoError(t, err)
		assert.Contains(t, out, "Imported 3 documents")
	})

	t.Run("cache-assisted search matches body only after warming", func(t *testing.T) {
		t.Parallel()

		r := newRunner(t)
		_, _, err := r.run("import", newSite(t))
		require.NoError(t, err)

		out, _, err := r.run("--use-page-cache", "search", "beta")
		require.NoError(t, err)
		assert.Contains(t, out, "No results")

		out, _, err = r.run("warm")
		require.NoError(t, err)
		assert.Contains(t, out, "Cached 3 pages")

		out, _, err = r.run("--use-page-cache", "search", "beta")
		require.NoError(t, err)
		assert.Contains(t, out, "Launch")

		_, _, err = r.run("cache", "clear")
		require.NoError(t, err)

		out, _, err = r.run("--use-page-cache", "search", "beta")
		require.NoError(t, err)
		assert.Contains(t, out, "No results")
	})

	t.Run("cache-assisted search falls back to direct when page cache disabled", func(t *testing.T) {
		t.Parallel()

		r := newRunner(t)
		_, _, err := r.run("import", newSite(t))
		require.NoError(t, err)

		out, _, err := r.run("--no-page-cache", "--use-page-cache", "search", "beta")
		require.NoError(t, err)
		assert.Contains(t, out, "Launch")
	})

	t.Run("reads flags from JSON configuration", func(t *testing.T) {
		t.Parallel()

		r := newRunner(t)
		_, _, err := r.run("import", newSite(t))
		require.NoError(t, err)

		config := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(config, []byte(`{"use_page_cache": true}`), 0644))

		out, _, err := r.run("--config", config, "search", "beta")
		require.NoError(t, err)
		assert.Contains(t, out, "No results", "cold cache leaves only titles to match")
	})

	t.Run("searches a directory without importing", func(t *testing.T) {
		t.Parallel()

		r := newRunner(t)

		out, _, err := r.run("search", "--dir", newSite(t), "welcome")
		require.NoError(t, err)
		assert.Contains(t, out, "Home")
	})

	t.Run("exports documents to a site directory", func(t *testing.T) {
		t.Parallel()

		r := newRunner(t)
		_, _, err := r.run("import", newSite(t))
		require.NoError(t, err)

		target := filepath.Join(t.TempDir(), "site")
		out, _, err := r.run("export", target)
		require.NoError(t, err)
		assert.Contains(t, out, "Exported 3 documents")

		out, _, err = r.run("search", "--dir", target, "beta")
		require.NoError(t, err)
		assert.Contains(t, out, "Launch")
	})

	t.Run("uses badger cache backend", func(t *testing.T) {
		t.Parallel()

		r := newRunner(t)
		_, _, err := r.run("import", newSite(t))
		require.NoError(t, err)

		badgerDir := filepath.Join(t.TempDir(), "cache")
		out, _, err := r.run("--cache-backend", "badger", "--badger-dir", badgerDir, "warm")
		require.NoError(t, err)
		assert.Contains(t, out, "Cached 3 pages")

		out, _, err = r.run("--cache-backend", "badger", "--badger-dir", badgerDir, "--use-page-cache", "search", "beta")
		require.NoError(t, err)
		assert.Contains(t, out, "Launch")
	})

	t.Run("serve rejects invalid search path", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"search", "/"} {
			_, stderr, err := newRunner(t).run("serve", "--search-path", path)
			require.Error(t, err, path)
			assert.Equal(t, simplesearch.EINVALID, simplesearch.ErrorCode(err), path)
			assert.Contains(t, stderr, "search path", path)
		}
	})

	t.Run("returns error when no command given", func(t *testing.T) {
		t.Parallel()

		_, _, err := newRunner(t).run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})
}
