package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	c := NewCategory(Socionics, Identity)
	assert.Equal(t, "Socionics: Identity", c.String())
	assert.False(t, c.IsUnknown())

	// Categories are scoped per typology
	assert.NotEqual(t, c, NewCategory(Temporistics, Identity))

	u := Unknown(Amatoric)
	assert.True(t, u.IsUnknown())
	assert.Equal(t, Amatoric, u.Typology)
}

func TestScoreTableClone(t *testing.T) {
	table := ScoreTable{"Duality": {Score: 100, Description: "Ideal"}}
	clone := table.Clone()
	clone["Duality"] = ScoreEntry{Score: 1}
	assert.Equal(t, 100, table["Duality"].Score)

	var empty ScoreTable
	assert.NotNil(t, empty.Clone())
}

func TestDefaultDocuments(t *testing.T) {
	weights := DefaultWeights()
	statuses := DefaultStatuses()
	assert.Len(t, weights, len(WeightedTypologies))
	assert.Len(t, statuses, len(WeightedTypologies))
	for _, name := range WeightedTypologies {
		assert.InDelta(t, DefaultWeight, weights[name], 1e-9)
		assert.True(t, statuses[name])
	}
	assert.NotContains(t, weights, Temperament)
}

func TestScoreDocumentName(t *testing.T) {
	assert.Equal(t, "socionics_relationships.json", ScoreDocumentName(Socionics))
	assert.Equal(t, "temporistics_comfort_scores.json", ScoreDocumentName(Temporistics))
	assert.Equal(t, "iq_comfort_scores.json", ScoreDocumentName(IQ))
}

func TestPersonAssignedType(t *testing.T) {
	p := Person{Types: map[TypologyName]string{Socionics: "ILE"}}
	assert.Equal(t, "ILE", p.AssignedType(Socionics))
	assert.Empty(t, p.AssignedType(IQ))
	assert.Empty(t, Person{}.AssignedType(Socionics))
}
