package docstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
)

// FileStore keeps one JSON file per document inside a data directory.
type FileStore struct {
	dir string
}

var _ contract.DocumentStore = &FileStore{} // Compile-time check

// NewFileStore returns a store rooted at dir. The directory is created on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the data directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Read returns the document body.
func (s *FileStore) Read(name string) ([]byte, error) {
	if err := validateDocumentName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s in %s: %w", name, s.dir, schema.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// Write stores the document through a temporary file and a rename, so readers
// see either the old or the new body.
func (s *FileStore) Write(name string, data []byte) error {
	if err := validateDocumentName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", s.dir, err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", name, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// Exists reports whether the document file is present.
func (s *FileStore) Exists(name string) (bool, error) {
	if err := validateDocumentName(name); err != nil {
		return false, err
	}
	_, err := os.Stat(filepath.Join(s.dir, name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// List returns the JSON documents in the data directory.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !documentNamePattern.MatchString(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// Delete removes the document file if present.
func (s *FileStore) Delete(name string) error {
	if err := validateDocumentName(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

// GetStatus reports the document count, total size and last modification time.
func (s *FileStore) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(schema.FileBackend),
		Location:  s.dir,
		Connected: true,
	}
	names, err := s.List()
	if err != nil {
		return status, err
	}
	status.Documents = names
	status.TotalDocuments = len(names)
	for _, name := range names {
		info, err := os.Stat(filepath.Join(s.dir, name))
		if err != nil {
			return status, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		status.SizeBytes += info.Size()
		if info.ModTime().After(status.LastUpdateTime) {
			status.LastUpdateTime = info.ModTime()
		}
	}
	return status, nil
}

// Close is a no-op for files.
func (s *FileStore) Close() error {
	return nil
}
