package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/cline-tools/cline/internal/tasks"
)

// NewTestStore creates a task store over an in-memory SQLite database.
// The database is automatically closed when the test finishes.
func NewTestStore(t *testing.T) *tasks.Store {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	store, err := tasks.NewWithDB(db)
	require.NoError(t, err, "failed to prepare schema")

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
