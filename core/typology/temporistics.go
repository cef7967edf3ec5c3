package typology

import "github.com/huangsam/typomatch/schema"

// Temporistics category labels.
const (
	CompleteUnity        = "Complete Unity"
	DeepHarmony          = "Deep Harmony"
	SharedVision         = "Shared Vision"
	SuperficialAgreement = "Superficial Agreement"
	StrategicConflict    = "Strategic Conflict"
)

// TemporisticsAspects are the four time aspects in their base order.
var TemporisticsAspects = []string{"Past", "Current", "Future", "Eternity"}

// Temporistics classifies pairs of time-perception orderings.
type Temporistics struct {
	vocab vocabulary
	types []string
}

// NewTemporistics builds the classifier with all 24 orderings.
func NewTemporistics() *Temporistics {
	return &Temporistics{
		vocab: newVocabulary(TemporisticsAspects),
		types: FormatAll(Permutations(TemporisticsAspects)),
	}
}

// Name returns the typology name.
func (t *Temporistics) Name() schema.TypologyName { return schema.Temporistics }

// AllTypes returns a copy of the valid orderings.
func (t *Temporistics) AllTypes() []string { return append([]string(nil), t.types...) }

// Relationship applies, in order: identical sequences, shared leading aspect,
// crossed leading pair, then the count of positional matches.
func (t *Temporistics) Relationship(a, b string) schema.Category {
	x, okA := t.vocab.parse(a)
	y, okB := t.vocab.parse(b)
	if !okA || !okB {
		return schema.Unknown(schema.Temporistics)
	}
	switch {
	case equalSeq(x, y):
		return schema.NewCategory(schema.Temporistics, CompleteUnity)
	case x[0] == y[0]:
		return schema.NewCategory(schema.Temporistics, schema.IdentityPhilia)
	case x[0] == y[1] && x[1] == y[0]:
		return schema.NewCategory(schema.Temporistics, schema.OrderFullOrder)
	}
	matches := 0
	for i := range x {
		if x[i] == y[i] {
			matches++
		}
	}
	// Three matches out of four imply the fourth, so 3 is unreachable for permutations.
	// It stays in the scale for tables that enrich the vocabulary.
	switch matches {
	case 3:
		return schema.NewCategory(schema.Temporistics, DeepHarmony)
	case 2:
		return schema.NewCategory(schema.Temporistics, SharedVision)
	case 1:
		return schema.NewCategory(schema.Temporistics, SuperficialAgreement)
	default:
		return schema.NewCategory(schema.Temporistics, StrategicConflict)
	}
}

// DefaultScores returns the bundled comfort scores on a 0-100 scale.
func (t *Temporistics) DefaultScores() schema.ScoreTable {
	return table{
		{CompleteUnity, 100, "Identical perception of time"},
		{schema.IdentityPhilia, 90, "Same leading time aspect"},
		{schema.OrderFullOrder, 85, "Leading aspects complement each other"},
		{DeepHarmony, 80, "Three aspects in the same position"},
		{SharedVision, 60, "Two aspects in the same position"},
		{SuperficialAgreement, 40, "One aspect in the same position"},
		{StrategicConflict, 20, "No aspect in the same position"},
	}.build()
}
