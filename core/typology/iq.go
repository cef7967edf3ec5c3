package typology

import "github.com/huangsam/typomatch/schema"

// IQ category labels.
const (
	SameLevel        = "Same Level"
	AdjacentLevel    = "Adjacent Level"
	DistantLevel     = "Distant Level"
	IntellectualGap  = "Intellectual Gap"
	intellectualSpan = 3
)

// IQBands are the ordered intelligence bands, lowest first.
var IQBands = []string{"Low", "Below Average", "Average", "Above Average", "Superior", "Gifted"}

// IQ is a single-aspect typology compared by band distance.
type IQ struct {
	vocab vocabulary
}

// NewIQ builds the classifier.
func NewIQ() *IQ {
	return &IQ{vocab: newVocabulary(IQBands)}
}

// Name returns the typology name.
func (q *IQ) Name() schema.TypologyName { return schema.IQ }

// AllTypes returns the bands in order.
func (q *IQ) AllTypes() []string { return append([]string(nil), IQBands...) }

// Relationship classifies by how many bands apart the two types are.
func (q *IQ) Relationship(a, b string) schema.Category {
	x, okA := q.band(a)
	y, okB := q.band(b)
	if !okA || !okB {
		return schema.Unknown(schema.IQ)
	}
	switch d := max(x-y, y-x); {
	case d == 0:
		return schema.NewCategory(schema.IQ, SameLevel)
	case d == 1:
		return schema.NewCategory(schema.IQ, AdjacentLevel)
	case d < intellectualSpan:
		return schema.NewCategory(schema.IQ, DistantLevel)
	default:
		return schema.NewCategory(schema.IQ, IntellectualGap)
	}
}

func (q *IQ) band(s string) (int, bool) {
	c, ok := q.vocab.canonical[normalizeAspect(s)]
	if !ok {
		return 0, false
	}
	return q.vocab.index(c), true
}

// DefaultScores returns the bundled comfort scores on a 0-100 scale.
func (q *IQ) DefaultScores() schema.ScoreTable {
	return table{
		{SameLevel, 100, "Same intellectual pace"},
		{AdjacentLevel, 75, "Close enough to keep up"},
		{DistantLevel, 40, "Noticeable difference in pace"},
		{IntellectualGap, 10, "Hard to find common ground"},
	}.build()
}
