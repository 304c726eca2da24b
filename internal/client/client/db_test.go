package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestInitDatabase_CreatesStateTable(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "state.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO state(key, value) VALUES ('token', 'abc')`)
	require.NoError(t, err)

	var v string
	require.NoError(t, db.QueryRow(`SELECT value FROM state WHERE key = 'token'`).Scan(&v))
	require.Equal(t, "abc", v)
}

func TestInitDatabase_IdempotentMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// reopening must not fail on already-applied migrations
	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
