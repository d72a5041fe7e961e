package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/simplesearch/sqlite"
	"github.com/stretchr/testify/require"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()

		for _, table := range []string{"documents", "segments", "page_cache"} {
			var count int
			err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
			require.NoError(t, err, table)
		}
	})

	t.Run("records schema version and reopens without migrating again", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		dbPath := t.TempDir() + "/reopen.db"
		first := sqlite.NewDB(dbPath)
		require.NoError(t, first.Open())
		version, err := first.SchemaVersion(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, version)
		require.NoError(t, first.Close())

		second := sqlite.NewDB(dbPath)
		require.NoError(t, second.Open())
		defer second.Close()
		version, err = second.SchemaVersion(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, version)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})
}
