package state

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:staterepo?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS state (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
DELETE FROM state;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_GetMissingKey(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestSQLiteRepository_SetGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyFreeScanCount, "1"))

	v, err := r.Get(ctx, KeyFreeScanCount)
	require.NoError(t, err)
	require.Equal(t, "1", v)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyUserRole, "user"))
	require.NoError(t, r.Set(ctx, KeyUserRole, "admin"))

	v, err := r.Get(ctx, KeyUserRole)
	require.NoError(t, err)
	require.Equal(t, "admin", v)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, "abc"))
	require.NoError(t, r.Delete(ctx, KeyToken))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "", v)

	// deleting an absent key is not an error
	require.NoError(t, r.Delete(ctx, KeyToken))
}

func TestSQLiteRepository_DeleteMany(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, "abc"))
	require.NoError(t, r.Set(ctx, KeyUserRole, "analyst"))
	require.NoError(t, r.Set(ctx, KeyFreeScanCount, "1"))

	require.NoError(t, r.DeleteMany(ctx, KeyToken, KeyUserRole))

	for _, k := range []string{KeyToken, KeyUserRole} {
		v, err := r.Get(ctx, k)
		require.NoError(t, err)
		require.Equal(t, "", v)
	}

	// unrelated keys survive
	v, err := r.Get(ctx, KeyFreeScanCount)
	require.NoError(t, err)
	require.Equal(t, "1", v)

	// absent keys are not an error
	require.NoError(t, r.DeleteMany(ctx, KeyToken, KeyUserRole))
}

func TestSQLiteRepository_Clear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, "abc"))
	require.NoError(t, r.Set(ctx, KeyFreeScanCount, "2"))
	require.NoError(t, r.Clear(ctx))

	for _, k := range []string{KeyToken, KeyFreeScanCount} {
		v, err := r.Get(ctx, k)
		require.NoError(t, err)
		require.Equal(t, "", v)
	}
}
