package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate.sqlite"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, runMigrations(context.Background(), db))
	require.NoError(t, runMigrations(context.Background(), db))

	var count int
	err = db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='documents'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
