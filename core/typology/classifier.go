package typology

import "github.com/huangsam/typomatch/schema"

// Classifier decides the relationship category of two types under one typology.
// Implementations are pure: the same pair always yields the same category, and
// malformed types yield the typology's Unknown Relationship category instead of an error.
type Classifier interface {
	// Name is the registry key of the typology.
	Name() schema.TypologyName
	// AllTypes lists every valid type string in canonical form.
	AllTypes() []string
	// Relationship classifies the ordered pair (a, b).
	Relationship(a, b string) schema.Category
	// DefaultScores is the comfort score table seeded into an empty store.
	DefaultScores() schema.ScoreTable
}

// table is a small helper for building default score tables.
type table []struct {
	label string
	score int
	desc  string
}

func (t table) build() schema.ScoreTable {
	out := make(schema.ScoreTable, len(t))
	for _, row := range t {
		out[row.label] = schema.ScoreEntry{Score: row.score, Description: row.desc}
	}
	return out
}
