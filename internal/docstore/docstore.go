// Package docstore persists score, weight and status documents.
package docstore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
)

// documentNamePattern keeps document names flat so they can never escape the data directory.
var documentNamePattern = regexp.MustCompile(`^[a-z0-9_]+\.json$`)

// validateDocumentName rejects names that are not plain lowercase JSON file names.
func validateDocumentName(name string) error {
	if !documentNamePattern.MatchString(name) {
		return fmt.Errorf("invalid document name %q: %w", name, schema.ErrInvalidInput)
	}
	return nil
}

// DefaultDataDir returns the directory used by the file backend when none is configured.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "data")
	}
	return filepath.Join(home, ".typomatch", "data")
}

// DefaultSQLitePath returns the database file used by the sqlite backend when none is configured.
func DefaultSQLitePath() string {
	return filepath.Join(filepath.Dir(DefaultDataDir()), "typomatch.db")
}

// Open builds the document store for a backend. location is a directory for the
// file backend, a database path for sqlite and a DSN for mysql and postgresql.
func Open(backend schema.DatabaseBackend, location string) (contract.DocumentStore, error) {
	switch backend {
	case schema.FileBackend, "":
		if location == "" {
			location = DefaultDataDir()
		}
		return NewFileStore(location), nil
	case schema.MemoryBackend:
		return NewMemoryStore(), nil
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend:
		return NewSQLStore(backend, location)
	default:
		return nil, fmt.Errorf("unsupported document backend: %s. Must be file, sqlite, mysql, postgresql, or memory", backend)
	}
}
