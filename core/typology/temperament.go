package typology

import "github.com/huangsam/typomatch/schema"

// Temperament category labels.
const (
	Complementary = "Complementary"
	Balancing     = "Balancing"
	Friction      = "Friction"
)

// TemperamentDichotomies are the two axes of the classic temperaments.
var TemperamentDichotomies = []Dichotomy{
	{"Extraverted", "Introverted"},
	{"Stable", "Unstable"},
}

var temperamentNames = map[[2]string]string{
	{"Extraverted", "Stable"}:   "Sanguine",
	{"Extraverted", "Unstable"}: "Choleric",
	{"Introverted", "Stable"}:   "Phlegmatic",
	{"Introverted", "Unstable"}: "Melancholic",
}

// Temperament compares the four classic temperaments axis by axis.
type Temperament struct {
	vocab vocabulary
	poles map[string][]string
	types []string
}

// NewTemperament builds the classifier from its two axes.
func NewTemperament() *Temperament {
	t := &Temperament{poles: make(map[string][]string)}
	for _, combo := range Combinations(TemperamentDichotomies) {
		name := temperamentNames[[2]string{combo[0], combo[1]}]
		t.types = append(t.types, name)
		t.poles[name] = combo
	}
	t.vocab = newVocabulary(t.types)
	return t
}

// Name returns the typology name.
func (t *Temperament) Name() schema.TypologyName { return schema.Temperament }

// AllTypes returns the four temperaments.
func (t *Temperament) AllTypes() []string { return append([]string(nil), t.types...) }

// Relationship compares the extraversion and stability axes.
func (t *Temperament) Relationship(a, b string) schema.Category {
	x, okA := t.resolve(a)
	y, okB := t.resolve(b)
	if !okA || !okB {
		return schema.Unknown(schema.Temperament)
	}
	outward, steady := x[0] != y[0], x[1] != y[1]
	switch {
	case !outward && !steady:
		return schema.NewCategory(schema.Temperament, schema.Identity)
	case outward && steady:
		return schema.NewCategory(schema.Temperament, Complementary)
	case outward:
		return schema.NewCategory(schema.Temperament, Balancing)
	default:
		return schema.NewCategory(schema.Temperament, Friction)
	}
}

func (t *Temperament) resolve(s string) ([]string, bool) {
	name, ok := t.vocab.canonical[normalizeAspect(s)]
	if !ok {
		return nil, false
	}
	return t.poles[name], true
}

// DefaultScores returns the bundled comfort scores on a 0-100 scale.
func (t *Temperament) DefaultScores() schema.ScoreTable {
	return table{
		{schema.Identity, 70, "Same temperament"},
		{Complementary, 90, "Opposite on both axes"},
		{Balancing, 75, "Different energy, same stability"},
		{Friction, 40, "Same energy, different stability"},
	}.build()
}
