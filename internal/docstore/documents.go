package docstore

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
)

// Documents reads and writes typed documents on top of a DocumentStore.
// Every save rewrites the whole document.
type Documents struct {
	store contract.DocumentStore
}

var (
	_ contract.ScoreStore  = &Documents{} // Compile-time check
	_ contract.WeightStore = &Documents{} // Compile-time check
)

// NewDocuments wraps a document store.
func NewDocuments(store contract.DocumentStore) *Documents {
	return &Documents{store: store}
}

// Store returns the underlying document store.
func (d *Documents) Store() contract.DocumentStore {
	return d.store
}

// LoadScores reads the comfort score table of a typology. A missing document is an error.
func (d *Documents) LoadScores(typology schema.TypologyName) (schema.ScoreTable, error) {
	var table schema.ScoreTable
	if err := d.load(schema.ScoreDocumentName(typology), &table); err != nil {
		return nil, err
	}
	if table == nil {
		table = schema.ScoreTable{}
	}
	return table, nil
}

// SaveScores writes the comfort score table of a typology.
func (d *Documents) SaveScores(typology schema.TypologyName, table schema.ScoreTable) error {
	return d.save(schema.ScoreDocumentName(typology), table)
}

// LoadWeights reads the weight document, writing the defaults when it is absent.
func (d *Documents) LoadWeights() (schema.Weights, error) {
	var weights schema.Weights
	err := d.load(schema.WeightsDocument, &weights)
	if errors.Is(err, schema.ErrDocumentNotFound) {
		weights = schema.DefaultWeights()
		return weights, d.SaveWeights(weights)
	}
	if err != nil {
		return nil, err
	}
	if weights == nil {
		weights = schema.Weights{}
	}
	return weights, nil
}

// SaveWeights writes the weight document.
func (d *Documents) SaveWeights(weights schema.Weights) error {
	return d.save(schema.WeightsDocument, weights)
}

// LoadStatuses reads the status document, writing the defaults when it is absent.
func (d *Documents) LoadStatuses() (schema.Statuses, error) {
	var statuses schema.Statuses
	err := d.load(schema.StatusDocument, &statuses)
	if errors.Is(err, schema.ErrDocumentNotFound) {
		statuses = schema.DefaultStatuses()
		return statuses, d.SaveStatuses(statuses)
	}
	if err != nil {
		return nil, err
	}
	if statuses == nil {
		statuses = schema.Statuses{}
	}
	return statuses, nil
}

// SaveStatuses writes the status document.
func (d *Documents) SaveStatuses(statuses schema.Statuses) error {
	return d.save(schema.StatusDocument, statuses)
}

func (d *Documents) load(name string, v any) error {
	data, err := d.store.Read(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func (d *Documents) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return d.store.Write(name, data)
}
