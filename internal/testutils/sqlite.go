package testutils

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-codex/internal/sqlite"
)

// CreateTestDB opens a migrated database in the test's temp directory.
// The database is closed when the test finishes.
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "codex.db"), nil)
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() { _ = db.Close() })
	return db
}
