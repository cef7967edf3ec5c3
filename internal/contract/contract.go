// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/huangsam/typomatch/schema"

// DocumentStore persists whole JSON documents by name.
// This allows the engine to be tested without touching disk or a database.
type DocumentStore interface {
	// Read returns the document body or an error wrapping schema.ErrDocumentNotFound.
	Read(name string) ([]byte, error)

	// Write replaces the whole document. Readers never observe a partial body.
	Write(name string, data []byte) error

	// Exists reports whether the document is present.
	Exists(name string) (bool, error)

	// List returns the names of all stored documents in sorted order.
	List() ([]string, error)

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(name string) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Close releases the underlying connection.
	Close() error
}

// ScoreStore loads and saves comfort score tables per typology.
type ScoreStore interface {
	LoadScores(typology schema.TypologyName) (schema.ScoreTable, error)
	SaveScores(typology schema.TypologyName, table schema.ScoreTable) error
}

// WeightStore loads and saves the weight and status documents.
// A missing document loads as its bootstrap default.
type WeightStore interface {
	LoadWeights() (schema.Weights, error)
	SaveWeights(weights schema.Weights) error
	LoadStatuses() (schema.Statuses, error)
	SaveStatuses(statuses schema.Statuses) error
}
