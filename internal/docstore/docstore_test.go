package docstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// backends returns one fresh store per local backend.
func backends(t *testing.T) map[string]contract.DocumentStore {
	t.Helper()
	sqliteStore, err := NewSQLStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]contract.DocumentStore{
		"file":   NewFileStore(filepath.Join(t.TempDir(), "data")),
		"memory": NewMemoryStore(),
		"sqlite": sqliteStore,
	}
}

// TestDocumentStoreContract runs the same scenario against every local backend.
func TestDocumentStoreContract(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Read("missing.json")
			assert.ErrorIs(t, err, schema.ErrDocumentNotFound)

			exists, err := store.Exists("a.json")
			require.NoError(t, err)
			assert.False(t, exists)

			require.NoError(t, store.Write("b.json", []byte(`{"x":1}`)))
			require.NoError(t, store.Write("a.json", []byte(`{}`)))
			require.NoError(t, store.Write("b.json", []byte(`{"x":2}`)))

			data, err := store.Read("b.json")
			require.NoError(t, err)
			assert.JSONEq(t, `{"x":2}`, string(data))

			names, err := store.List()
			require.NoError(t, err)
			assert.Equal(t, []string{"a.json", "b.json"}, names)

			status, err := store.GetStatus()
			require.NoError(t, err)
			assert.True(t, status.Connected)
			assert.Equal(t, 2, status.TotalDocuments)
			assert.Positive(t, status.SizeBytes)

			require.NoError(t, store.Delete("a.json"))
			require.NoError(t, store.Delete("a.json"))
			exists, err = store.Exists("a.json")
			require.NoError(t, err)
			assert.False(t, exists)

			assert.ErrorIs(t, store.Write("../escape.json", []byte(`{}`)), schema.ErrInvalidInput)
		})
	}
}

// TestFileStoreLeavesNoTempFiles checks the rename-based write.
func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, store.Write(schema.WeightsDocument, []byte(`{"IQ":1}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, schema.WeightsDocument, entries[0].Name())
}

// TestOpen covers backend selection.
func TestOpen(t *testing.T) {
	store, err := Open(schema.FileBackend, t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	store, err = Open(schema.MemoryBackend, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	_, err = Open("cassandra", "")
	assert.Error(t, err)
}

// TestPrintStoreStatus checks the status lines.
func TestPrintStoreStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintStoreStatus(&buf, schema.StoreStatus{
		Backend:        "file",
		Location:       "/tmp/data",
		Connected:      true,
		TotalDocuments: 1,
		Documents:      []string{schema.WeightsDocument},
		SizeBytes:      42,
	})
	out := buf.String()
	assert.Contains(t, out, "Store Backend: file")
	assert.Contains(t, out, "Total Documents: 1")
	assert.Contains(t, out, schema.WeightsDocument)
	assert.Contains(t, out, "Size: 42 bytes")
}

// TestDocumentsPropagatesReadErrors uses a mock to fail the underlying store.
func TestDocumentsPropagatesReadErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	store := &MockDocumentStore{}
	store.On("Read", schema.WeightsDocument).Return(nil, boom)
	store.On("Read", schema.ScoreDocumentName(schema.IQ)).Return([]byte("not json"), nil)

	docs := NewDocuments(store)
	_, err := docs.LoadWeights()
	assert.ErrorIs(t, err, boom)

	_, err = docs.LoadScores(schema.IQ)
	assert.ErrorContains(t, err, "failed to decode")

	store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}
