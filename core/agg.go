package core

import (
	"fmt"
	"maps"
	"slices"

	"github.com/huangsam/typomatch/schema"
)

// WeightedCompatibility blends the comfort scores of every enabled typology both
// people are typed in. A nil weights map loads the persisted weights; a typology
// missing from the weights counts with weight 1. Typologies are visited in sorted
// order so the floating point sum is reproducible.
func (e *Engine) WeightedCompatibility(a, b map[schema.TypologyName]string, weights schema.Weights) (schema.Compatibility, error) {
	var result schema.Compatibility

	if weights == nil {
		loaded, err := e.weights.LoadWeights()
		if err != nil {
			return result, fmt.Errorf("failed to load weights: %w", err)
		}
		weights = loaded
	}
	statuses, err := e.weights.LoadStatuses()
	if err != nil {
		return result, fmt.Errorf("failed to load statuses: %w", err)
	}

	names := slices.Sorted(maps.Keys(a))
	for name := range b {
		if _, ok := a[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	var weighted float64
	for _, name := range names {
		typeA, inA := a[name]
		typeB, inB := b[name]
		enabled, listed := statuses[name]
		if !inA || !inB || (listed && !enabled) {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		weight, ok := weights[name]
		if !ok {
			weight = schema.DefaultWeight
		}
		rel, err := e.Calculate(typeA, typeB, name)
		if err != nil {
			return schema.Compatibility{}, err
		}

		weighted += float64(rel.Score) * weight
		result.TotalWeight += weight
		result.Contributions = append(result.Contributions, schema.Contribution{
			Typology: name,
			Category: rel.Category,
			Score:    rel.Score,
			Weight:   weight,
		})
	}

	if result.TotalWeight == 0 {
		return schema.Compatibility{}, fmt.Errorf("no typology shared by both people carries weight: %w", schema.ErrNoValidTypologies)
	}
	result.Score = weighted / result.TotalWeight

	e.logger.Debug().
		Float64("score", result.Score).
		Int("typologies", len(result.Contributions)).
		Msg("weighted compatibility calculated")
	return result, nil
}
