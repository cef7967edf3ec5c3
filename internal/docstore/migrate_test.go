package docstore

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/typomatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrateSQLite walks the migrations up, down and to a fixed version.
func TestMigrateSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	result, err := Migrate(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, uint(2), result.To)

	result, err = Migrate(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Contains(t, result.String(), "already at version 2")

	result, err = Migrate(schema.SQLiteBackend, dbPath, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(2), result.From)
	assert.Equal(t, uint(1), result.To)

	store, err := NewSQLStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Write(schema.StatusDocument, []byte(`{"IQ":false}`)))
	require.NoError(t, store.Close())
}

// TestMigrateRejectsFileBackend only accepts SQL backends.
func TestMigrateRejectsFileBackend(t *testing.T) {
	_, err := Migrate(schema.FileBackend, t.TempDir(), -1)
	assert.ErrorContains(t, err, "unsupported SQL backend")
}
