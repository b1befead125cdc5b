package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/boxoffice/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		var count int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM films").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
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

		var journalMode string
		err = db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})

	t.Run("reopening keeps existing data", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/films.db"
		ctx := context.Background()

		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		_, err := db.ExecContext(ctx, "INSERT INTO films (id, position, title, created_at) VALUES ('a', 0, 'Jaws', '2024-01-01T00:00:00Z')")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db = sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		defer db.Close()

		var title string
		require.NoError(t, db.QueryRowContext(ctx, "SELECT title FROM films").Scan(&title))
		assert.Equal(t, "Jaws", title)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "films.db", sqlite.Path("sqlite:films.db"))
	assert.Equal(t, "films.db", sqlite.Path("sqlite://films.db"))
	assert.Equal(t, "/var/lib/films.db", sqlite.Path("sqlite:///var/lib/films.db"))
	assert.Equal(t, ":memory:", sqlite.Path("sqlite::memory:"))
}

func TestIsURI(t *testing.T) {
	t.Parallel()

	assert.True(t, sqlite.IsURI("sqlite:films.db"))
	assert.False(t, sqlite.IsURI("mongodb://localhost:27017/"))
}
