package docstore

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
)

// MemoryStore keeps documents in a map. It backs tests and throwaway sessions.
type MemoryStore struct {
	sync.RWMutex
	docs    map[string][]byte
	updated time.Time
}

var _ contract.DocumentStore = &MemoryStore{} // Compile-time check

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// Read returns a copy of the document body.
func (m *MemoryStore) Read(name string) ([]byte, error) {
	m.RLock()
	defer m.RUnlock()
	data, ok := m.docs[name]
	if !ok {
		return nil, fmt.Errorf("%s in memory: %w", name, schema.ErrDocumentNotFound)
	}
	return slices.Clone(data), nil
}

// Write replaces the document body.
func (m *MemoryStore) Write(name string, data []byte) error {
	if err := validateDocumentName(name); err != nil {
		return err
	}
	m.Lock()
	defer m.Unlock()
	m.docs[name] = slices.Clone(data)
	m.updated = time.Now()
	return nil
}

// Exists reports whether the document is present.
func (m *MemoryStore) Exists(name string) (bool, error) {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.docs[name]
	return ok, nil
}

// List returns the document names in sorted order.
func (m *MemoryStore) List() ([]string, error) {
	m.RLock()
	defer m.RUnlock()
	return slices.Sorted(maps.Keys(m.docs)), nil
}

// Delete removes the document if present.
func (m *MemoryStore) Delete(name string) error {
	m.Lock()
	defer m.Unlock()
	delete(m.docs, name)
	return nil
}

// GetStatus reports the document count and total size.
func (m *MemoryStore) GetStatus() (schema.StoreStatus, error) {
	m.RLock()
	defer m.RUnlock()
	status := schema.StoreStatus{
		Backend:        string(schema.MemoryBackend),
		Location:       "memory",
		Connected:      true,
		TotalDocuments: len(m.docs),
		Documents:      slices.Sorted(maps.Keys(m.docs)),
		LastUpdateTime: m.updated,
	}
	for _, data := range m.docs {
		status.SizeBytes += int64(len(data))
	}
	return status, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
