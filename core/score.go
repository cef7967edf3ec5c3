package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/huangsam/typomatch/schema"
)

// ScoreFor returns the comfort score and description of a category label.
// A label missing from the table scores 0 with the Unknown Relationship description.
func (e *Engine) ScoreFor(name schema.TypologyName, label string) (int, string, error) {
	table, err := e.Scores(name)
	if err != nil {
		return 0, "", err
	}
	entry, ok := table[label]
	if !ok {
		return 0, schema.UnknownRelationship, nil
	}
	return entry.Score, entry.Description, nil
}

// Scores loads the persisted comfort score table of a typology.
func (e *Engine) Scores(name schema.TypologyName) (schema.ScoreTable, error) {
	if _, err := e.registry.Resolve(name); err != nil {
		return nil, err
	}
	table, err := e.scores.LoadScores(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s scores: %w", name, err)
	}
	return table, nil
}

// UpdateScore sets the score of one category with a whole-document read-modify-write.
// The description of an existing entry is kept; new entries get an empty description.
func (e *Engine) UpdateScore(name schema.TypologyName, label string, score int) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("category is required: %w", schema.ErrInvalidInput)
	}
	table, err := e.Scores(name)
	if err != nil {
		return err
	}

	updated := table.Clone()
	entry := updated[label]
	previous := entry.Score
	entry.Score = score
	updated[label] = entry

	if err := e.scores.SaveScores(name, updated); err != nil {
		return fmt.Errorf("failed to save %s scores: %w", name, err)
	}
	e.logger.Info().
		Str("typology", string(name)).
		Str("category", label).
		Int("previous", previous).
		Int("score", score).
		Msg("comfort score updated")
	return nil
}

// Weights returns the persisted weight document.
func (e *Engine) Weights() (schema.Weights, error) {
	return e.weights.LoadWeights()
}

// Statuses returns the persisted status document.
func (e *Engine) Statuses() (schema.Statuses, error) {
	return e.weights.LoadStatuses()
}

// UpdateWeight sets the aggregation weight of a registered typology.
func (e *Engine) UpdateWeight(name schema.TypologyName, weight float64) error {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("weight %v must be a finite non-negative number: %w", weight, schema.ErrInvalidInput)
	}
	if _, err := e.registry.Resolve(name); err != nil {
		return err
	}
	weights, err := e.weights.LoadWeights()
	if err != nil {
		return err
	}
	weights[name] = weight
	if err := e.weights.SaveWeights(weights); err != nil {
		return err
	}
	e.logger.Info().Str("typology", string(name)).Float64("weight", weight).Msg("weight updated")
	return nil
}

// UpdateStatus enables or disables a registered typology in aggregation.
func (e *Engine) UpdateStatus(name schema.TypologyName, enabled bool) error {
	if _, err := e.registry.Resolve(name); err != nil {
		return err
	}
	statuses, err := e.weights.LoadStatuses()
	if err != nil {
		return err
	}
	statuses[name] = enabled
	if err := e.weights.SaveStatuses(statuses); err != nil {
		return err
	}
	e.logger.Info().Str("typology", string(name)).Bool("enabled", enabled).Msg("status updated")
	return nil
}
