package typology

import "github.com/huangsam/typomatch/schema"

// AmatoricAspects are the four love aspects in their base order.
var AmatoricAspects = []string{"Love", "Passion", "Friendship", "Romance"}

// Amatoric only recognizes identical orderings for now.
type Amatoric struct {
	vocab vocabulary
	types []string
}

// NewAmatoric builds the classifier with all 24 orderings.
func NewAmatoric() *Amatoric {
	return &Amatoric{
		vocab: newVocabulary(AmatoricAspects),
		types: FormatAll(Permutations(AmatoricAspects)),
	}
}

// Name returns the typology name.
func (m *Amatoric) Name() schema.TypologyName { return schema.Amatoric }

// AllTypes returns a copy of the valid orderings.
func (m *Amatoric) AllTypes() []string { return append([]string(nil), m.types...) }

// Relationship returns Identity for equal orderings and Unknown Relationship otherwise.
func (m *Amatoric) Relationship(a, b string) schema.Category {
	x, okA := m.vocab.parse(a)
	y, okB := m.vocab.parse(b)
	if okA && okB && equalSeq(x, y) {
		return schema.NewCategory(schema.Amatoric, schema.Identity)
	}
	return schema.Unknown(schema.Amatoric)
}

// DefaultScores returns the bundled comfort scores on a 0-100 scale.
func (m *Amatoric) DefaultScores() schema.ScoreTable {
	return table{
		{schema.Identity, 80, "Same order of love aspects"},
	}.build()
}
