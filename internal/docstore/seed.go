package docstore

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
)

// ScoreSource supplies the default comfort scores of one typology.
type ScoreSource interface {
	Name() schema.TypologyName
	DefaultScores() schema.ScoreTable
}

// Seed writes the default documents that are missing and returns their names.
// Existing documents are left untouched.
func Seed(store contract.DocumentStore, sources ...ScoreSource) ([]string, error) {
	defaults := map[string]any{
		schema.WeightsDocument: schema.DefaultWeights(),
		schema.StatusDocument:  schema.DefaultStatuses(),
	}
	order := []string{schema.WeightsDocument, schema.StatusDocument}
	for _, src := range sources {
		name := schema.ScoreDocumentName(src.Name())
		defaults[name] = src.DefaultScores()
		order = append(order, name)
	}

	var written []string
	for _, name := range order {
		exists, err := store.Exists(name)
		if err != nil {
			return written, err
		}
		if exists {
			continue
		}
		data, err := json.MarshalIndent(defaults[name], "", "  ")
		if err != nil {
			return written, fmt.Errorf("failed to encode %s: %w", name, err)
		}
		if err := store.Write(name, data); err != nil {
			return written, err
		}
		written = append(written, name)
	}
	return written, nil
}

// Clear deletes every document in the store and returns how many were removed.
func Clear(store contract.DocumentStore) (int, error) {
	names, err := store.List()
	if err != nil {
		return 0, err
	}
	for i, name := range names {
		if err := store.Delete(name); err != nil {
			return i, err
		}
	}
	return len(names), nil
}
