package core

import (
	"testing"

	"github.com/huangsam/typomatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWeightedCompatibility covers blending, skipping and weight defaults.
func TestWeightedCompatibility(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		name     string
		a, b     map[schema.TypologyName]string
		weights  schema.Weights
		expected float64
		skipped  []schema.TypologyName
	}{
		{
			name:     "single shared typology",
			a:        map[schema.TypologyName]string{schema.Temporistics: pcfe},
			b:        map[schema.TypologyName]string{schema.Temporistics: pcfe},
			expected: 100,
		},
		{
			name: "explicit weights",
			a: map[schema.TypologyName]string{
				schema.Temporistics: pcfe,
				schema.Psychosophia: elwp,
			},
			b: map[schema.TypologyName]string{
				schema.Temporistics: pcfe,
				schema.Psychosophia: "Physics, Will, Logic, Emotion",
			},
			weights:  schema.Weights{schema.Temporistics: 2, schema.Psychosophia: 1},
			expected: (100*2 - 8) / 3.0,
		},
		{
			name: "one-sided typologies are skipped",
			a: map[schema.TypologyName]string{
				schema.Temporistics: pcfe,
				schema.Socionics:    "ILE",
			},
			b: map[schema.TypologyName]string{
				schema.Temporistics: pcfe,
				schema.IQ:           "Average",
			},
			expected: 100,
			skipped:  []schema.TypologyName{schema.IQ, schema.Socionics},
		},
		{
			name: "absent weight counts as one",
			a: map[schema.TypologyName]string{
				schema.Temporistics: pcfe,
				schema.Temperament:  "Sanguine",
			},
			b: map[schema.TypologyName]string{
				schema.Temporistics: pcfe,
				schema.Temperament:  "Choleric",
			},
			weights:  schema.Weights{schema.Temporistics: 1},
			expected: (100 + 40) / 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.WeightedCompatibility(tt.a, tt.b, tt.weights)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got.Score, 1e-9)
			assert.Equal(t, tt.skipped, got.Skipped)
		})
	}
}

// TestWeightedCompatibilityMatchesSingleScore checks the single-typology law.
func TestWeightedCompatibilityMatchesSingleScore(t *testing.T) {
	engine, _ := newTestEngine(t)
	rel, err := engine.Calculate(pcfe, pcfe, schema.Temporistics)
	require.NoError(t, err)

	m := map[schema.TypologyName]string{schema.Temporistics: pcfe}
	got, err := engine.WeightedCompatibility(m, m, nil)
	require.NoError(t, err)
	assert.InDelta(t, float64(rel.Score), got.Score, 1e-9)
	require.Len(t, got.Contributions, 1)
	assert.InDelta(t, schema.DefaultWeight, got.Contributions[0].Weight, 1e-9)
}

// TestWeightedCompatibilityNoOverlap raises ErrNoValidTypologies.
func TestWeightedCompatibilityNoOverlap(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.WeightedCompatibility(
		map[schema.TypologyName]string{schema.Temporistics: pcfe},
		map[schema.TypologyName]string{schema.Psychosophia: elwp},
		nil,
	)
	assert.ErrorIs(t, err, schema.ErrNoValidTypologies)

	_, err = engine.WeightedCompatibility(nil, nil, nil)
	assert.ErrorIs(t, err, schema.ErrNoValidTypologies)

	m := map[schema.TypologyName]string{schema.Temporistics: pcfe}
	_, err = engine.WeightedCompatibility(m, m, schema.Weights{schema.Temporistics: 0})
	assert.ErrorIs(t, err, schema.ErrNoValidTypologies)
}

// TestWeightedCompatibilityDisabled skips typologies switched off in the status document.
func TestWeightedCompatibilityDisabled(t *testing.T) {
	engine, _ := newTestEngine(t)
	require.NoError(t, engine.UpdateStatus(schema.Temporistics, false))

	m := map[schema.TypologyName]string{schema.Temporistics: pcfe}
	_, err := engine.WeightedCompatibility(m, m, nil)
	assert.ErrorIs(t, err, schema.ErrNoValidTypologies)
}

// TestWeightedCompatibilityPropagatesErrors surfaces facade errors.
func TestWeightedCompatibilityPropagatesErrors(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.WeightedCompatibility(
		map[schema.TypologyName]string{schema.Temporistics: ""},
		map[schema.TypologyName]string{schema.Temporistics: pcfe},
		nil,
	)
	assert.ErrorIs(t, err, schema.ErrInvalidInput)

	_, err = engine.WeightedCompatibility(
		map[schema.TypologyName]string{"Enneagram": "4w5"},
		map[schema.TypologyName]string{"Enneagram": "9w1"},
		nil,
	)
	assert.ErrorIs(t, err, schema.ErrUnknownTypology)
}
