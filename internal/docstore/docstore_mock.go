package docstore

import (
	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
	"github.com/stretchr/testify/mock"
)

// MockDocumentStore is a mock implementation of DocumentStore for testing.
type MockDocumentStore struct {
	mock.Mock
}

var _ contract.DocumentStore = &MockDocumentStore{} // Compile-time check

// Read implements the DocumentStore interface.
func (m *MockDocumentStore) Read(name string) ([]byte, error) {
	args := m.Called(name)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// Write implements the DocumentStore interface.
func (m *MockDocumentStore) Write(name string, data []byte) error {
	args := m.Called(name, data)
	return args.Error(0)
}

// Exists implements the DocumentStore interface.
func (m *MockDocumentStore) Exists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

// List implements the DocumentStore interface.
func (m *MockDocumentStore) List() ([]string, error) {
	args := m.Called()
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

// Delete implements the DocumentStore interface.
func (m *MockDocumentStore) Delete(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// GetStatus implements the DocumentStore interface.
func (m *MockDocumentStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the DocumentStore interface.
func (m *MockDocumentStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockScoreStore is a mock implementation of ScoreStore for testing.
type MockScoreStore struct {
	mock.Mock
}

var _ contract.ScoreStore = &MockScoreStore{} // Compile-time check

// LoadScores implements the ScoreStore interface.
func (m *MockScoreStore) LoadScores(typology schema.TypologyName) (schema.ScoreTable, error) {
	args := m.Called(typology)
	table, _ := args.Get(0).(schema.ScoreTable)
	return table, args.Error(1)
}

// SaveScores implements the ScoreStore interface.
func (m *MockScoreStore) SaveScores(typology schema.TypologyName, table schema.ScoreTable) error {
	args := m.Called(typology, table)
	return args.Error(0)
}
